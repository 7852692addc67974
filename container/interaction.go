package container

import (
	"github.com/milk9111/toolgrid/common"
	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/tool"
)

const (
	// A title strip this tall (or the whole panel if shorter) starts a drag.
	titleStripHeight = 24
	// Square hit region at the bottom-right corner that starts a resize.
	resizeCornerSize = 16
	// Largest geometry change a single frame may apply. An input spike can
	// still only walk the panel this far per frame; the target position is
	// reached over the following frames.
	maxFrameDelta = 256
)

// entry wraps a live panel with its transient interaction state. Entries are
// created when a panel is added and dropped with it; they are never
// serialized.
type entry struct {
	panel *tool.Panel

	dragging bool
	resizing bool

	// Geometry at pointer-down and the pointer-down position, both in
	// canvas coordinates.
	originX, originY float64
	originW, originH float64
	anchorX, anchorY float64

	renderErr string
}

func (e *entry) interacting() bool {
	return e.dragging || e.resizing
}

func (e *entry) titleStrip() common.Rect {
	p := e.panel
	h := float64(titleStripHeight)
	if p.H < h {
		h = p.H
	}
	return common.Rect{X: p.X, Y: p.Y, Width: p.W, Height: h}
}

func (e *entry) resizeCorner() common.Rect {
	p := e.panel
	return common.Rect{
		X:      p.X + p.W - resizeCornerSize,
		Y:      p.Y + p.H - resizeCornerSize,
		Width:  resizeCornerSize,
		Height: resizeCornerSize,
	}
}

func (e *entry) bounds() common.Rect {
	p := e.panel
	return common.Rect{X: p.X, Y: p.Y, Width: p.W, Height: p.H}
}

// stepInteraction advances one panel's drag/resize state for this frame.
// in is in canvas coordinates; canStart is false when a sibling already owns
// the pointer or this panel isn't the topmost hit. Returns true if the panel
// finished an interaction this frame.
func (c *Container) stepInteraction(e *entry, in InputSnapshot, contentW, contentH float64, canStart bool) bool {
	p := e.panel

	if e.interacting() {
		if !in.Pressed {
			c.finishInteraction(e, contentW, contentH)
			return true
		}
		// Walk toward origin + pointer delta, at most maxFrameDelta per
		// frame and axis. No snapping while the button is held.
		dx := in.CursorX - e.anchorX
		dy := in.CursorY - e.anchorY
		if e.dragging {
			targetX := common.Clamp(e.originX+dx, 0, contentW-p.W)
			targetY := common.Clamp(e.originY+dy, 0, contentH-p.H)
			p.X += common.Clamp(targetX-p.X, -maxFrameDelta, maxFrameDelta)
			p.Y += common.Clamp(targetY-p.Y, -maxFrameDelta, maxFrameDelta)
		} else {
			targetW := common.Clamp(e.originW+dx, tool.MinPanelWidth, contentW-p.X)
			targetH := common.Clamp(e.originH+dy, tool.MinPanelHeight, contentH-p.Y)
			p.W += common.Clamp(targetW-p.W, -maxFrameDelta, maxFrameDelta)
			p.H += common.Clamp(targetH-p.H, -maxFrameDelta, maxFrameDelta)
		}
		return false
	}

	if !canStart || !in.JustPressed || in.WindowBusy {
		return false
	}
	if c.anyDragging || c.anyResizing {
		return false
	}

	// Resize wins where the corner overlaps the title strip.
	if corner := e.resizeCorner(); corner.Contains(in.CursorX, in.CursorY) {
		e.resizing = true
		e.originX, e.originY = p.X, p.Y
		e.originW, e.originH = p.W, p.H
		e.anchorX, e.anchorY = in.CursorX, in.CursorY
		return false
	}
	if strip := e.titleStrip(); strip.Contains(in.CursorX, in.CursorY) {
		e.dragging = true
		e.originX, e.originY = p.X, p.Y
		e.originW, e.originH = p.W, p.H
		e.anchorX, e.anchorY = in.CursorX, in.CursorY
	}
	return false
}

// finishInteraction snaps the released geometry to the subdivision pitch,
// re-clamps it, recomputes grid coordinates, and marks the layout dirty
// exactly once.
func (c *Container) finishInteraction(e *entry, contentW, contentH float64) {
	p := e.panel
	wasResizing := e.resizing
	e.dragging = false
	e.resizing = false

	stepX, stepY := c.Grid.SnapStep(contentW, contentH)
	if wasResizing {
		p.W = common.RoundToMultiple(p.W, stepX)
		p.H = common.RoundToMultiple(p.H, stepY)
	} else {
		p.X = common.RoundToMultiple(p.X, stepX)
		p.Y = common.RoundToMultiple(p.Y, stepY)
	}
	if p.W < tool.MinPanelWidth {
		p.W = tool.MinPanelWidth
	}
	if p.H < tool.MinPanelHeight {
		p.H = tool.MinPanelHeight
	}
	p.W = common.Clamp(p.W, tool.MinPanelWidth, contentW)
	p.H = common.Clamp(p.H, tool.MinPanelHeight, contentH)
	p.X = common.Clamp(p.X, 0, contentW-p.W)
	p.Y = common.Clamp(p.Y, 0, contentH-p.H)

	grid.ToGrid(c.Grid, contentW, contentH, p)
	c.markDirty()
}

// topHitEntry returns the index of the topmost visible panel whose drag or
// resize region contains the cursor, or -1. Entries later in the slice draw
// on top.
func (c *Container) topHitEntry(in InputSnapshot) int {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if !e.panel.Visible {
			continue
		}
		corner := e.resizeCorner()
		strip := e.titleStrip()
		if corner.Contains(in.CursorX, in.CursorY) || strip.Contains(in.CursorX, in.CursorY) {
			return i
		}
	}
	return -1
}
