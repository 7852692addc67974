package panels

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/toolgrid/tool"
)

const defaultScriptSource = `lines := ["frame " + string(frame)]`

// Script runs a user tengo snippet every frame and prints whatever it left
// in the global "lines" array. Compile and runtime errors show inline in the
// panel instead of failing the frame.
type Script struct {
	Source string

	compiled   *tengo.Compiled
	compileErr error
	runErr     error
	lines      []string
}

func NewScript(source string) *Script {
	s := &Script{}
	s.setSource(source)
	return s
}

func (s *Script) setSource(source string) {
	if source == "" {
		source = defaultScriptSource
	}
	s.Source = source
	s.compiled = nil
	s.runErr = nil

	script := tengo.NewScript([]byte(source))
	script.SetImports(stdlib.GetModuleMap("math", "text", "times", "fmt"))
	for _, v := range []string{"frame", "width", "height"} {
		if err := script.Add(v, 0); err != nil {
			s.compileErr = err
			return
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		s.compileErr = err
		log.Printf("panels: script compile: %v", err)
		return
	}
	s.compiled = compiled
	s.compileErr = nil
}

func (s *Script) Render(dst *ebiten.Image, p *tool.Panel, f tool.Frame) {
	min := dst.Bounds().Min
	y := min.Y + contentTop(p)

	if s.compileErr != nil {
		ebitenutil.DebugPrintAt(dst, "compile error: "+s.compileErr.Error(), min.X+6, y)
		return
	}
	if s.compiled == nil {
		return
	}

	s.run(f, p)
	if s.runErr != nil {
		ebitenutil.DebugPrintAt(dst, "script error: "+s.runErr.Error(), min.X+6, y)
		return
	}
	for _, line := range s.lines {
		if float64(y-min.Y) > p.H-14 {
			break
		}
		ebitenutil.DebugPrintAt(dst, line, min.X+6, y)
		y += 16
	}
}

func (s *Script) run(f tool.Frame, p *tool.Panel) {
	_ = s.compiled.Set("frame", f.Count)
	_ = s.compiled.Set("width", int(p.W))
	_ = s.compiled.Set("height", int(p.H))
	if err := s.compiled.Run(); err != nil {
		s.runErr = err
		return
	}
	s.runErr = nil

	s.lines = s.lines[:0]
	out := s.compiled.Get("lines")
	if out == nil {
		return
	}
	arr, ok := out.Value().([]any)
	if !ok {
		s.lines = append(s.lines, fmt.Sprintf("%v", out.Value()))
		return
	}
	for _, v := range arr {
		s.lines = append(s.lines, fmt.Sprintf("%v", v))
	}
}

func (s *Script) DrawSettings(ui *tool.SettingsUI) {
	ui.StringField("Source", s.Source, func(v string) { s.setSource(v) })
}

func (s *Script) ExportSettings() map[string]any {
	return map[string]any{"source": s.Source}
}

func (s *Script) ImportSettings(m map[string]any) {
	if src := stringSetting(m, "source", s.Source); src != s.Source {
		s.setSource(src)
	}
}

func (s *Script) Dispose() {
	s.compiled = nil
}
