package panels

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/toolgrid/tool"
)

const statsWindow = 120

var sparkColor = color.NRGBA{R: 0x60, G: 0xc0, B: 0x80, A: 0xff}

// FrameStats plots the recent FPS as a sparkline with the current numbers
// above it.
type FrameStats struct {
	ShowTPS bool

	samples [statsWindow]float64
	n       int
	next    int
}

func (s *FrameStats) push(v float64) {
	s.samples[s.next] = v
	s.next = (s.next + 1) % statsWindow
	if s.n < statsWindow {
		s.n++
	}
}

func (s *FrameStats) Render(dst *ebiten.Image, p *tool.Panel, f tool.Frame) {
	s.push(f.FPS)

	min := dst.Bounds().Min
	top := min.Y + contentTop(p)
	header := fmt.Sprintf("FPS %.1f", f.FPS)
	if s.ShowTPS {
		header += fmt.Sprintf("  TPS %.1f", f.TPS)
	}
	ebitenutil.DebugPrintAt(dst, header, min.X+6, top)

	chartTop := float32(top + 18)
	chartH := float32(p.H) - (chartTop - float32(min.Y)) - 6
	if chartH < 8 || s.n < 2 {
		return
	}

	peak := 1.0
	for i := 0; i < s.n; i++ {
		if s.samples[i] > peak {
			peak = s.samples[i]
		}
	}

	stepX := (float32(p.W) - 12) / float32(statsWindow-1)
	start := s.next - s.n
	if start < 0 {
		start += statsWindow
	}
	var prevX, prevY float32
	for i := 0; i < s.n; i++ {
		v := s.samples[(start+i)%statsWindow]
		x := float32(min.X) + 6 + float32(i)*stepX
		y := chartTop + chartH*(1-float32(v/peak))
		if i > 0 {
			vector.StrokeLine(dst, prevX, prevY, x, y, 1, sparkColor, false)
		}
		prevX, prevY = x, y
	}
}

func (s *FrameStats) DrawSettings(ui *tool.SettingsUI) {
	ui.BoolField("Show TPS", s.ShowTPS, func(v bool) { s.ShowTPS = v })
}

func (s *FrameStats) ExportSettings() map[string]any {
	return map[string]any{"showTps": s.ShowTPS}
}

func (s *FrameStats) ImportSettings(m map[string]any) {
	s.ShowTPS = boolSetting(m, "showTps", s.ShowTPS)
}

func (s *FrameStats) Dispose() {}
