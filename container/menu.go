package container

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/toolgrid/common"
)

const (
	menuItemHeight = 18
	menuWidth      = 190
)

var (
	menuBgColor    = color.NRGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xf0}
	menuHoverColor = color.NRGBA{R: 0x30, G: 0x40, B: 0x58, A: 0xf0}
	menuEdgeColor  = color.NRGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
)

type menuItem struct {
	label  string
	action func()
	sub    []menuItem
}

// contextMenu is a hand-drawn right-click menu with one submenu level, which
// is all the category tree needs. Coordinates are canvas-local.
type contextMenu struct {
	open    bool
	x, y    float64
	items   []menuItem
	subOpen int
}

func (m *contextMenu) openAt(x, y float64, items []menuItem) {
	m.open = true
	m.x, m.y = x, y
	m.items = items
	m.subOpen = -1
}

func (m *contextMenu) close() {
	m.open = false
	m.items = nil
	m.subOpen = -1
}

func (m *contextMenu) mainRect() common.Rect {
	return common.Rect{X: m.x, Y: m.y, Width: menuWidth, Height: float64(len(m.items) * menuItemHeight)}
}

func (m *contextMenu) subRect() common.Rect {
	if m.subOpen < 0 || m.subOpen >= len(m.items) {
		return common.Rect{}
	}
	sub := m.items[m.subOpen].sub
	return common.Rect{
		X:      m.x + menuWidth,
		Y:      m.y + float64(m.subOpen*menuItemHeight),
		Width:  menuWidth,
		Height: float64(len(sub) * menuItemHeight),
	}
}

// update processes pointer input while the menu is open. A left click on an
// item runs it (or expands its submenu); any click elsewhere closes the menu.
func (m *contextMenu) update(in InputSnapshot, c *Container) {
	if !m.open {
		return
	}
	if in.RightJustPressed {
		m.close()
		return
	}
	if !in.JustPressed {
		// Hovering an item with a submenu expands it.
		if i, ok := m.hitMain(in); ok && len(m.items[i].sub) > 0 {
			m.subOpen = i
		}
		return
	}

	if i, ok := m.hitSub(in); ok {
		item := m.items[m.subOpen].sub[i]
		m.close()
		if item.action != nil {
			c.enqueue(item.action)
		}
		return
	}
	if i, ok := m.hitMain(in); ok {
		item := m.items[i]
		if len(item.sub) > 0 {
			m.subOpen = i
			return
		}
		m.close()
		if item.action != nil {
			c.enqueue(item.action)
		}
		return
	}
	m.close()
}

func (m *contextMenu) hitMain(in InputSnapshot) (int, bool) {
	r := m.mainRect()
	if !r.Contains(in.CursorX, in.CursorY) {
		return 0, false
	}
	return int(in.CursorY-m.y) / menuItemHeight, true
}

func (m *contextMenu) hitSub(in InputSnapshot) (int, bool) {
	r := m.subRect()
	if r.Height == 0 || !r.Contains(in.CursorX, in.CursorY) {
		return 0, false
	}
	return int(in.CursorY-r.Y) / menuItemHeight, true
}

func (m *contextMenu) draw(screen *ebiten.Image, originX, originY float64) {
	if !m.open {
		return
	}
	m.drawColumn(screen, originX+m.x, originY+m.y, m.items, m.subOpen)
	if m.subOpen >= 0 && m.subOpen < len(m.items) {
		r := m.subRect()
		m.drawColumn(screen, originX+r.X, originY+r.Y, m.items[m.subOpen].sub, -1)
	}
}

func (m *contextMenu) drawColumn(screen *ebiten.Image, x, y float64, items []menuItem, expanded int) {
	h := float32(len(items) * menuItemHeight)
	vector.DrawFilledRect(screen, float32(x), float32(y), menuWidth, h, menuBgColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), menuWidth, h, 1, menuEdgeColor, false)
	for i, item := range items {
		iy := y + float64(i*menuItemHeight)
		if i == expanded {
			vector.DrawFilledRect(screen, float32(x), float32(iy), menuWidth, menuItemHeight, menuHoverColor, false)
		}
		label := item.label
		if len(item.sub) > 0 {
			label += "  >"
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)+6, int(iy)+1)
	}
}
