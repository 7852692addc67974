package layout

import (
	"strings"
	"testing"

	"github.com/milk9111/toolgrid/grid"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	rec := Record{
		Name: "main",
		Grid: grid.Settings{AutoAdjust: true, Multiplier: 2, Subdivisions: 4, PaddingPx: 8},
		Panels: []Snapshot{
			{
				Id: "A", TypeTag: "builtin.label", Title: "Label",
				Position: Point{X: 200, Y: 200}, Size: Size{W: 400, H: 300},
				Visible: true, HeaderVisible: true,
				GridCol: 2, GridRow: 2, GridColSpan: 4, GridRowSpan: 3, HasGridCoords: true,
				Settings: map[string]any{"text": "hi"},
			},
		},
	}

	name, err := s.Save(rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "main" {
		t.Fatalf("expected name main, got %q", name)
	}

	got, err := s.Load("main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "main" || got.Grid.Multiplier != 2 || len(got.Panels) != 1 {
		t.Fatalf("record mangled: %+v", got)
	}
	p := got.Panels[0]
	if p.Id != "A" || p.Position.X != 200 || p.Size.H != 300 || !p.HasGridCoords {
		t.Fatalf("panel snapshot mangled: %+v", p)
	}
	if p.Settings["text"] != "hi" {
		t.Fatalf("settings mangled: %v", p.Settings)
	}
}

func TestStoreListAndDelete(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, name := range []string{"beta", "alpha"} {
		if _, err := s.Save(Record{Name: name}); err != nil {
			t.Fatalf("save %q: %v", name, err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Fatalf("expected sorted [alpha beta], got %v", names)
	}

	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	names, err = s.List()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(names) != 1 || names[0] != "beta" {
		t.Fatalf("expected [beta], got %v", names)
	}
}

func TestStoreUnnamedSaveGetsTimestampedName(t *testing.T) {
	s := NewStore(t.TempDir())
	name, err := s.Save(Record{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(name, "layout_") {
		t.Fatalf("expected generated name, got %q", name)
	}
	if _, err := s.Load(name); err != nil {
		t.Fatalf("load generated name: %v", err)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	s := NewStore(t.TempDir() + "/never-created")
	names, err := s.List()
	if err != nil || names != nil {
		t.Fatalf("missing dir should list empty, got %v, %v", names, err)
	}
}

func TestPresetStoreRoundTrip(t *testing.T) {
	s := NewPresetStore(t.TempDir())

	if err := s.Save("builtin.script", "fps", map[string]any{"source": "lines := [1]"}); err != nil {
		t.Fatalf("save preset: %v", err)
	}
	if err := s.Save("builtin.script", "alt", map[string]any{"source": "x := 2"}); err != nil {
		t.Fatalf("save preset: %v", err)
	}

	presets, err := s.Load("builtin.script")
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	if presets[0].Name != "alt" || presets[1].Name != "fps" {
		t.Fatalf("expected sorted names, got %q %q", presets[0].Name, presets[1].Name)
	}
	if presets[1].Settings["source"] != "lines := [1]" {
		t.Fatalf("settings mangled: %v", presets[1].Settings)
	}

	none, err := s.Load("builtin.unknown")
	if err != nil || none != nil {
		t.Fatalf("unknown tag should load empty, got %v, %v", none, err)
	}
}
