package panels

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/toolgrid/tool"
)

// Label shows static text, one line per \n.
type Label struct {
	Text string
}

func (l *Label) Render(dst *ebiten.Image, p *tool.Panel, f tool.Frame) {
	min := dst.Bounds().Min
	y := min.Y + contentTop(p)
	for _, line := range strings.Split(l.Text, "\n") {
		ebitenutil.DebugPrintAt(dst, line, min.X+6, y)
		y += 16
	}
}

func (l *Label) DrawSettings(ui *tool.SettingsUI) {
	ui.StringField("Text", l.Text, func(v string) { l.Text = v })
}

func (l *Label) ExportSettings() map[string]any {
	return map[string]any{"text": l.Text}
}

func (l *Label) ImportSettings(m map[string]any) {
	l.Text = stringSetting(m, "text", l.Text)
}

func (l *Label) Dispose() {}

// contentTop leaves room for the header strip when it is shown.
func contentTop(p *tool.Panel) int {
	if p.HeaderVisible {
		return 28
	}
	return 6
}
