package container

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/toolgrid/common"
	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/tool"
)

const (
	modalWidth     = 340
	modalRowHeight = 20
)

var (
	modalBgColor   = color.NRGBA{R: 0x14, G: 0x14, B: 0x1c, A: 0xf4}
	modalEdgeColor = color.NRGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
)

// settingsModal shows an editable field list, either a panel's settings
// (declared through DrawSettings) or the grid resolution editor. Clicking a
// toggle row flips it; clicking any other row opens the prompt seeded with
// the current value.
type settingsModal struct {
	open  bool
	panel *tool.Panel
	title string
}

func (m *settingsModal) openPanel(p *tool.Panel) {
	m.open = true
	m.panel = p
	m.title = p.DisplayTitle() + " Settings"
}

func (m *settingsModal) openGrid() {
	m.open = true
	m.panel = nil
	m.title = "Grid Settings"
}

func (m *settingsModal) close() {
	m.open = false
	m.panel = nil
}

// fields rebuilds the row list. For a panel modal the tool declares its own
// rows; DrawSettings runs behind a panic guard so a broken tool can't take
// the frame down.
func (m *settingsModal) fields(c *Container) []tool.SettingsField {
	if m.panel != nil {
		return panelFields(c, m.panel)
	}
	return gridFields(c)
}

func panelFields(c *Container, p *tool.Panel) (out []tool.SettingsField) {
	if p.Impl == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("container: panel %q DrawSettings panicked: %v", p.DisplayTitle(), r)
			out = nil
		}
	}()
	ui := &tool.SettingsUI{}
	p.Impl.DrawSettings(ui)
	fields := ui.Fields()
	for i := range fields {
		set := fields[i].Set
		fields[i].Set = func(v string) {
			if set != nil {
				set(v)
			}
			c.markDirty()
		}
	}
	return fields
}

func gridFields(c *Container) []tool.SettingsField {
	apply := func(mutate func(*grid.Settings)) {
		next := c.Grid
		mutate(&next)
		c.UpdateGridSettings(next)
	}

	ui := &tool.SettingsUI{}
	ui.BoolField("Auto resolution", c.Grid.AutoAdjust, func(v bool) {
		apply(func(s *grid.Settings) { s.AutoAdjust = v })
	})
	ui.IntField("Multiplier", c.Grid.Multiplier, func(v int) {
		apply(func(s *grid.Settings) { s.Multiplier = v })
	})
	ui.IntField("Columns", c.Grid.Columns, func(v int) {
		apply(func(s *grid.Settings) { s.Columns = v })
	})
	ui.IntField("Rows", c.Grid.Rows, func(v int) {
		apply(func(s *grid.Settings) { s.Rows = v })
	})
	ui.IntField("Subdivisions", c.Grid.Subdivisions, func(v int) {
		apply(func(s *grid.Settings) { s.Subdivisions = v })
	})
	ui.FloatField("Padding px", c.Grid.PaddingPx, func(v float64) {
		apply(func(s *grid.Settings) { s.PaddingPx = v })
	})
	return ui.Fields()
}

func (m *settingsModal) rect(c *Container, rows int) common.Rect {
	h := float64((rows + 2) * modalRowHeight)
	return common.Rect{
		X:      c.contentW/2 - modalWidth/2,
		Y:      c.contentH/2 - h/2,
		Width:  modalWidth,
		Height: h,
	}
}

func (m *settingsModal) update(in InputSnapshot, c *Container) {
	if !m.open || c.prompt.IsOpen() || c.dlg.visible() {
		return
	}
	if !in.JustPressed {
		return
	}
	fields := m.fields(c)
	r := m.rect(c, len(fields))
	if !r.Contains(in.CursorX, in.CursorY) {
		m.close()
		return
	}
	row := int(in.CursorY-r.Y)/modalRowHeight - 1
	if row < 0 {
		return
	}
	if row >= len(fields) {
		m.close()
		return
	}
	f := fields[row]
	if f.Toggle {
		f.Set("")
		return
	}
	c.prompt.Open(f.Label+":", f.Value, f.Set)
}

func (m *settingsModal) draw(screen *ebiten.Image, c *Container) {
	if !m.open {
		return
	}
	fields := m.fields(c)
	r := m.rect(c, len(fields))
	x := float32(c.originX + r.X)
	y := float32(c.originY + r.Y)
	vector.DrawFilledRect(screen, x, y, float32(r.Width), float32(r.Height), modalBgColor, false)
	vector.StrokeRect(screen, x, y, float32(r.Width), float32(r.Height), 1, modalEdgeColor, false)

	ebitenutil.DebugPrintAt(screen, m.title, int(x)+6, int(y)+2)
	for i, f := range fields {
		ebitenutil.DebugPrintAt(screen, f.Label+": "+f.Value, int(x)+12, int(y)+(i+1)*modalRowHeight+2)
	}
	ebitenutil.DebugPrintAt(screen, "[close]", int(x)+12, int(y)+(len(fields)+1)*modalRowHeight+2)
}
