package container

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	headerColor  = color.NRGBA{R: 0x20, G: 0x28, B: 0x38, A: 0xd8}
	outlineColor = color.NRGBA{R: 0x58, G: 0x70, B: 0xa0, A: 0xff}
	activeColor  = color.NRGBA{R: 0x90, G: 0xb0, B: 0xe0, A: 0xff}
	cornerColor  = color.NRGBA{R: 0x80, G: 0x80, B: 0x90, A: 0xb0}
	errorColor   = color.NRGBA{R: 0x60, G: 0x10, B: 0x10, A: 0xe0}
)

// renderPass draws every visible panel: background, clipped content, header
// strip, and the editing chrome. A panel whose Render panics gets an inline
// error box instead of blanking the canvas.
func (c *Container) renderPass(screen *ebiten.Image) {
	c.iterating = true
	defer func() { c.iterating = false }()

	for _, e := range c.entries {
		p := e.panel
		if !p.Visible {
			continue
		}

		sx := float32(c.originX + p.X)
		sy := float32(c.originY + p.Y)
		sw := float32(p.W)
		sh := float32(p.H)

		if p.BackgroundEnabled {
			vector.DrawFilledRect(screen, sx, sy, sw, sh, p.BackgroundColor.NRGBA(), false)
		}

		c.renderContent(screen, e)

		if p.HeaderVisible {
			strip := e.titleStrip()
			vector.DrawFilledRect(screen, sx, sy, sw, float32(strip.Height), headerColor, false)
			ebitenutil.DebugPrintAt(screen, p.DisplayTitle(), int(c.originX+p.X)+4, int(c.originY+p.Y)+2)
		}

		if c.EditMode || p.OutlineEnabled {
			col := outlineColor
			if e.interacting() {
				col = activeColor
			}
			vector.StrokeRect(screen, sx, sy, sw, sh, 1, col, false)
		}
		if c.EditMode {
			vector.DrawFilledRect(screen,
				sx+sw-resizeCornerSize, sy+sh-resizeCornerSize,
				resizeCornerSize, resizeCornerSize, cornerColor, false)
		}
	}
}

// renderContent clips the panel's content region and invokes the tool behind
// a panic guard.
func (c *Container) renderContent(screen *ebiten.Image, e *entry) {
	p := e.panel
	if p.Impl == nil {
		return
	}

	rect := image.Rect(
		int(c.originX+p.X), int(c.originY+p.Y),
		int(c.originX+p.X+p.W), int(c.originY+p.Y+p.H),
	).Intersect(screen.Bounds())
	if rect.Empty() {
		return
	}
	sub := screen.SubImage(rect).(*ebiten.Image)

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%v", r)
			if e.renderErr != msg {
				e.renderErr = msg
				log.Printf("container: panel %q render panicked: %v", p.DisplayTitle(), r)
			}
			vector.DrawFilledRect(screen,
				float32(c.originX+p.X), float32(c.originY+p.Y),
				float32(p.W), float32(p.H), errorColor, false)
			ebitenutil.DebugPrintAt(sub, "error: "+msg, rect.Min.X+4, rect.Min.Y+int(titleStripHeight)+4)
		}
	}()
	p.Impl.Render(sub, p, c.frame)
	e.renderErr = ""
}

// handleRightClick opens a context menu: over a panel always, over empty
// canvas only in edit mode. Menu item clicks themselves are handled by the
// menu before this runs, so a right-click that closed a menu can reopen one.
func (c *Container) handleRightClick(in InputSnapshot) {
	if c.modal.open || c.prompt.IsOpen() || c.dlg.visible() {
		return
	}
	c.menu.update(in, c)
	if !in.RightJustPressed {
		return
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		b := e.bounds()
		if e.panel.Visible && b.Contains(in.CursorX, in.CursorY) {
			c.menu.openAt(in.CursorX, in.CursorY, c.buildPanelMenu(e.panel))
			return
		}
	}
	if c.EditMode {
		c.menu.openAt(in.CursorX, in.CursorY, c.buildAddMenu(in.CursorX, in.CursorY))
	}
}
