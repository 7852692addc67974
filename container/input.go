package container

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot is the pointer state for one frame. The interaction code
// only ever reads a snapshot, never the global ebiten input, so it can be
// driven headless in tests. Cursor coordinates are in screen pixels.
type InputSnapshot struct {
	CursorX, CursorY float64

	Pressed      bool
	JustPressed  bool
	JustReleased bool

	RightJustPressed bool

	// WindowBusy is set by the host while the OS window itself is being
	// moved or resized; panel interactions must not start then.
	WindowBusy bool
}

// ReadInput captures the current frame's pointer state.
func ReadInput() InputSnapshot {
	x, y := ebiten.CursorPosition()
	return InputSnapshot{
		CursorX:          float64(x),
		CursorY:          float64(y),
		Pressed:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

// local returns a copy with the cursor translated into canvas coordinates.
func (in InputSnapshot) local(originX, originY float64) InputSnapshot {
	in.CursorX -= originX
	in.CursorY -= originY
	return in
}
