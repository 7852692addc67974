package container

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func isKeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// isBackspaceRepeat reports backspace on press and then at a typing repeat
// rate while held.
func isBackspaceRepeat() bool {
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	return d == 1 || (d > 20 && d%3 == 0)
}
