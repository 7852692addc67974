package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/toolgrid/container"
	"github.com/milk9111/toolgrid/layout"
)

const (
	baseWidth  = 1600
	baseHeight = 900
)

type Game struct {
	frames int

	tools   *container.Container
	watcher *layout.Watcher

	// demo scene state the built-in panels sample
	orbX, orbY float64
}

func NewGame(tools *container.Container, watcher *layout.Watcher) *Game {
	return &Game{tools: tools, watcher: watcher}
}

func (g *Game) Update() error {
	g.frames++

	t := float64(g.frames) / 60
	g.orbX = baseWidth/2 + math.Cos(t)*300
	g.orbY = baseHeight/2 + math.Sin(t*1.3)*200

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.tools.EditMode = !g.tools.EditMode
	}

	g.drainWatcher()
	g.tools.Update()

	return nil
}

// drainWatcher reloads the active layout when its file changed on disk, so
// hand edits show up live. All of this runs on the render thread.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name == g.tools.LayoutName() && !g.tools.Dirty() {
				if err := g.tools.LoadLayout(name); err != nil {
					log.Printf("reload layout %s: %v", name, err)
				}
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("layout watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)

	g.tools.Draw(screen, container.ReadInput())

	hint := "F1: edit mode"
	if g.tools.EditMode {
		hint = "F1: lock    right-click: menus"
	}
	ebitenutil.DebugPrintAt(screen, hint, 8, baseHeight-18)
}

// drawScene is the placeholder "game" under the overlay.
func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x0a, G: 0x0e, B: 0x12, A: 0xff})
	for x := 0; x < baseWidth; x += 100 {
		vector.StrokeLine(screen, float32(x), 0, float32(x), baseHeight, 1, color.NRGBA{R: 0x14, G: 0x1a, B: 0x22, A: 0xff}, false)
	}
	for y := 0; y < baseHeight; y += 100 {
		vector.StrokeLine(screen, 0, float32(y), baseWidth, float32(y), 1, color.NRGBA{R: 0x14, G: 0x1a, B: 0x22, A: 0xff}, false)
	}
	vector.DrawFilledCircle(screen, float32(g.orbX), float32(g.orbY), 24, color.NRGBA{R: 0xd0, G: 0x90, B: 0x30, A: 0xff}, false)
}

// sampleRows feeds the built-in value table.
func (g *Game) sampleRows() [][2]string {
	return [][2]string{
		{"frame", fmt.Sprintf("%d", g.frames)},
		{"orb x", fmt.Sprintf("%.1f", g.orbX)},
		{"orb y", fmt.Sprintf("%.1f", g.orbY)},
		{"fps", fmt.Sprintf("%.1f", ebiten.ActualFPS())},
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
