package layout

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/tool"
)

type stubTool struct {
	settings map[string]any
	disposed bool
}

func (s *stubTool) Render(dst *ebiten.Image, p *tool.Panel, f tool.Frame) {}
func (s *stubTool) DrawSettings(ui *tool.SettingsUI)                      {}
func (s *stubTool) Dispose()                                              { s.disposed = true }

func (s *stubTool) ExportSettings() map[string]any {
	out := make(map[string]any, len(s.settings))
	for k, v := range s.settings {
		out[k] = v
	}
	return out
}

func (s *stubTool) ImportSettings(settings map[string]any) {
	s.settings = make(map[string]any, len(settings))
	for k, v := range settings {
		s.settings[k] = v
	}
}

func newStubPanel(id, typeTag, title string) *tool.Panel {
	p := tool.NewPanel(typeTag, title, &stubTool{settings: map[string]any{}})
	p.Id = id
	return p
}

func stubRegistry(t *testing.T, tags ...string) *tool.Registry {
	t.Helper()
	reg := tool.NewRegistry()
	for _, tag := range tags {
		tag := tag
		err := reg.Register(tool.Registration{
			ID:    tag,
			Label: tag,
			New: func(x, y float64) (*tool.Panel, error) {
				p := tool.NewPanel(tag, tag, &stubTool{settings: map[string]any{}})
				p.X, p.Y = x, y
				return p, nil
			},
		})
		if err != nil {
			t.Fatalf("register %q: %v", tag, err)
		}
	}
	return reg
}

func TestApplyExportRoundTrip(t *testing.T) {
	reg := stubRegistry(t, "Label")
	a := newStubPanel("A", "Label", "First")
	a.X, a.Y, a.W, a.H = 100, 50, 300, 200
	a.GridCol, a.GridRow, a.GridColSpan, a.GridRowSpan = 1, 0.5, 3, 2
	a.HasGridCoords = true
	a.Impl.ImportSettings(map[string]any{"text": "hello"})
	b := newStubPanel("B", "Label", "Second")
	live := []*tool.Panel{a, b}

	rec := Export("test", grid.DefaultSettings(), live)
	result, skipped := Apply(reg, rec, live)

	if len(skipped) != 0 {
		t.Fatalf("expected no skips, got %v", skipped)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(result))
	}
	if result[0] != a || result[1] != b {
		t.Fatalf("round-trip should keep object identity")
	}
	if a.X != 100 || a.Y != 50 || a.W != 300 || a.H != 200 {
		t.Fatalf("geometry changed: (%f,%f) %fx%f", a.X, a.Y, a.W, a.H)
	}
	if a.GridCol != 1 || a.GridRowSpan != 2 || !a.HasGridCoords {
		t.Fatalf("grid coords changed")
	}
	if got := a.Impl.ExportSettings()["text"]; got != "hello" {
		t.Fatalf("settings lost: %v", got)
	}
}

func TestApplyTwiceDoesNotDuplicate(t *testing.T) {
	reg := stubRegistry(t, "Label")
	live := []*tool.Panel{newStubPanel("A", "Label", "First")}
	rec := Export("test", grid.DefaultSettings(), live)

	once, _ := Apply(reg, rec, live)
	twice, _ := Apply(reg, rec, once)
	if len(once) != 1 || len(twice) != 1 {
		t.Fatalf("expected 1 panel after each apply, got %d then %d", len(once), len(twice))
	}
}

func TestApplyEmptyRecordClearsCanvas(t *testing.T) {
	reg := stubRegistry(t, "Label")
	a := newStubPanel("A", "Label", "First")
	b := newStubPanel("B", "Label", "Second")

	result, skipped := Apply(reg, Record{Name: "empty"}, []*tool.Panel{a, b})
	if len(result) != 0 {
		t.Fatalf("expected empty canvas, got %d panels", len(result))
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if !a.Impl.(*stubTool).disposed || !b.Impl.(*stubTool).disposed {
		t.Fatalf("unmatched panels must be disposed")
	}
}

func TestApplySubsetRemovesAbsentPanels(t *testing.T) {
	reg := stubRegistry(t, "Label")
	a := newStubPanel("A", "Label", "First")
	b := newStubPanel("B", "Label", "Second")
	live := []*tool.Panel{a, b}

	full := Export("test", grid.DefaultSettings(), live)
	subset := full
	subset.Panels = full.Panels[1:] // only B

	result, _ := Apply(reg, subset, live)
	if len(result) != 1 || result[0] != b {
		t.Fatalf("expected only B to survive, got %d panels", len(result))
	}
	if !a.Impl.(*stubTool).disposed {
		t.Fatalf("A should have been disposed")
	}
	if b.Impl.(*stubTool).disposed {
		t.Fatalf("B should not have been disposed")
	}
}

// The spec's reconciliation scenario: live panels A and B; the record holds
// an edited B plus an unknown C of a registered kind. A is disposed, B keeps
// identity with new geometry, C is created through the registry.
func TestApplyMatchCreateDispose(t *testing.T) {
	reg := stubRegistry(t, "Label")
	a := newStubPanel("A", "Label", "First")
	b := newStubPanel("B", "Label", "Second")
	live := []*tool.Panel{a, b}

	bSnap := Capture(b)
	bSnap.Position = Point{X: 640, Y: 360}
	rec := Record{
		Name: "test",
		Panels: []Snapshot{
			bSnap,
			{Id: "C", TypeTag: "Label", Title: "Third", Position: Point{X: 10, Y: 20}, Size: Size{W: 200, H: 100}, Visible: true},
		},
	}

	result, skipped := Apply(reg, rec, live)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(result))
	}
	if result[0] != b {
		t.Fatalf("B must keep object identity")
	}
	if b.X != 640 || b.Y != 360 {
		t.Fatalf("B geometry not updated: (%f,%f)", b.X, b.Y)
	}
	if !a.Impl.(*stubTool).disposed {
		t.Fatalf("A should have been disposed")
	}
	c := result[1]
	if c.Id != "C" || c.TypeTag != "Label" || c.X != 10 || c.W != 200 {
		t.Fatalf("C not created from record: id=%q tag=%q", c.Id, c.TypeTag)
	}
}

func TestApplyMatchesByTitleThenType(t *testing.T) {
	reg := stubRegistry(t, "Label")
	byTitle := newStubPanel("old-id-1", "Label", "Named")
	byType := newStubPanel("old-id-2", "Label", "Other")
	live := []*tool.Panel{byTitle, byType}

	rec := Record{Panels: []Snapshot{
		{Id: "new-id-1", TypeTag: "Label", Title: "Named", Visible: true},
		{Id: "new-id-2", TypeTag: "Label", Title: "Renamed", Visible: true},
	}}

	result, skipped := Apply(reg, rec, live)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(result) != 2 {
		t.Fatalf("expected both entries to match existing panels, got %d", len(result))
	}
	if byTitle.Id != "new-id-1" {
		t.Fatalf("title match should adopt the record id, got %q", byTitle.Id)
	}
	if byType.Id != "new-id-2" {
		t.Fatalf("type match should adopt the record id, got %q", byType.Id)
	}
}

func TestApplyUnresolvableTagIsReported(t *testing.T) {
	reg := stubRegistry(t, "Label")
	rec := Record{Panels: []Snapshot{
		{Id: "X", TypeTag: "Gone", Title: "Lost"},
		{Id: "Y", TypeTag: "Label", Title: "Kept"},
	}}

	result, skipped := Apply(reg, rec, nil)
	if len(result) != 1 || result[0].Id != "Y" {
		t.Fatalf("the resolvable entry should still be created")
	}
	if len(skipped) != 1 || skipped[0] != "X" {
		t.Fatalf("expected X to be reported as skipped, got %v", skipped)
	}
}

func TestApplyFactoryFailureSkipsEntry(t *testing.T) {
	reg := tool.NewRegistry()
	if err := reg.Register(tool.Registration{
		ID:    "Broken",
		Label: "Broken",
		New: func(x, y float64) (*tool.Panel, error) {
			return nil, errors.New("backing resource missing")
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, skipped := Apply(reg, Record{Panels: []Snapshot{{Id: "X", TypeTag: "Broken"}}}, nil)
	if len(result) != 0 {
		t.Fatalf("expected no panels, got %d", len(result))
	}
	if len(skipped) != 1 || skipped[0] != "X" {
		t.Fatalf("expected X skipped, got %v", skipped)
	}
}

type panickyTool struct{ stubTool }

func (p *panickyTool) ImportSettings(map[string]any) { panic("bad settings") }

func TestApplyEntryPanicIsContained(t *testing.T) {
	reg := stubRegistry(t, "Label")
	bad := tool.NewPanel("Label", "Bad", &panickyTool{})
	bad.Id = "bad"
	good := newStubPanel("good", "Label", "Good")
	live := []*tool.Panel{bad, good}

	rec := Record{Panels: []Snapshot{
		{Id: "bad", TypeTag: "Label", Title: "Bad", Settings: map[string]any{"boom": true}},
		{Id: "good", TypeTag: "Label", Title: "Good"},
	}}

	result, skipped := Apply(reg, rec, live)
	if len(skipped) != 1 || skipped[0] != "bad" {
		t.Fatalf("expected the panicking entry to be skipped, got %v", skipped)
	}
	// The panicking entry never matched, so its live panel is reconciled away.
	if len(result) != 1 || result[0] != good {
		t.Fatalf("good panel should survive, got %d panels", len(result))
	}
}
