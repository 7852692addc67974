package panels

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/toolgrid/tool"
)

// ValueTable lists key/value pairs pulled from a host-provided sampler each
// frame. The engine doesn't know where the values come from.
type ValueTable struct {
	MaxRows int

	rows func() [][2]string
}

func NewValueTable(rows func() [][2]string) *ValueTable {
	return &ValueTable{MaxRows: 16, rows: rows}
}

func (t *ValueTable) Render(dst *ebiten.Image, p *tool.Panel, f tool.Frame) {
	if t.rows == nil {
		return
	}
	min := dst.Bounds().Min
	y := min.Y + contentTop(p)
	rows := t.rows()
	for i, row := range rows {
		if t.MaxRows > 0 && i >= t.MaxRows {
			break
		}
		if float64(y-min.Y) > p.H-14 {
			break
		}
		ebitenutil.DebugPrintAt(dst, row[0], min.X+6, y)
		ebitenutil.DebugPrintAt(dst, row[1], min.X+int(p.W/2), y)
		y += 16
	}
}

func (t *ValueTable) DrawSettings(ui *tool.SettingsUI) {
	ui.IntField("Max rows", t.MaxRows, func(v int) {
		if v > 0 {
			t.MaxRows = v
		}
	})
}

func (t *ValueTable) ExportSettings() map[string]any {
	return map[string]any{"maxRows": t.MaxRows}
}

func (t *ValueTable) ImportSettings(m map[string]any) {
	t.MaxRows = intSetting(m, "maxRows", t.MaxRows)
}

func (t *ValueTable) Dispose() {}
