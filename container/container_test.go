package container

import (
	"errors"
	"testing"

	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/layout"
	"github.com/milk9111/toolgrid/tool"
)

func TestApplyRecordSuppressesLayoutNotifications(t *testing.T) {
	c := newTestContainer(t)
	addTestPanel(t, c, 0, 0, 200, 100)

	var changes int
	c.OnLayoutChanged = func(layout.Record) { changes++ }

	rec := c.Export()
	rec.Name = "restored"
	rec.Panels = append(rec.Panels, layout.Snapshot{
		Id: "new", TypeTag: "Label", Title: "New", Visible: true,
		Position: layout.Point{X: 500, Y: 100}, Size: layout.Size{W: 200, H: 100},
	})

	skipped := c.ApplyRecord(rec)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if changes != 0 {
		t.Fatalf("restoring persisted state is not a user edit; got %d notifications", changes)
	}
	if c.Dirty() {
		t.Fatalf("container should be clean after apply")
	}
	if c.LayoutName() != "restored" {
		t.Fatalf("layout name not adopted: %q", c.LayoutName())
	}
	if len(c.Panels()) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(c.Panels()))
	}
}

func TestApplyRecordKeepsEntryStateForSurvivors(t *testing.T) {
	c := newTestContainer(t)
	p := addTestPanel(t, c, 0, 0, 200, 100)

	rec := c.Export()
	c.ApplyRecord(rec)
	if len(c.entries) != 1 || c.entries[0].panel != p {
		t.Fatalf("surviving panel should keep its entry")
	}
	if c.entries[0].dragging || c.entries[0].resizing {
		t.Fatalf("interaction state must be reset by apply")
	}
}

func TestDeferredEditsRunAfterIteration(t *testing.T) {
	c := newTestContainer(t)
	addTestPanel(t, c, 0, 0, 200, 100)

	var ran bool
	c.iterating = true
	c.enqueue(func() { ran = true })
	if ran {
		t.Fatalf("edit must not run during iteration")
	}
	c.iterating = false
	c.flushDeferred()
	if !ran {
		t.Fatalf("edit should run after the iteration completes")
	}

	// Outside iteration, edits run immediately.
	ran = false
	c.enqueue(func() { ran = true })
	if !ran {
		t.Fatalf("edit should run immediately when not iterating")
	}
}

func TestDuplicatePanel(t *testing.T) {
	c := newTestContainer(t)
	src := addTestPanel(t, c, 100, 100, 300, 200)
	src.CustomTitle = "Mine"
	src.BackgroundEnabled = false
	src.Impl.ImportSettings(map[string]any{"text": "dup me"})

	dup := c.DuplicatePanel(src)
	if dup == nil {
		t.Fatalf("duplicate failed")
	}
	if dup.Id == src.Id {
		t.Fatalf("duplicate must get its own id")
	}
	if dup.X != src.X+16 || dup.Y != src.Y+16 {
		t.Fatalf("duplicate should be offset: (%f,%f)", dup.X, dup.Y)
	}
	if dup.W != src.W || dup.H != src.H || dup.BackgroundEnabled != src.BackgroundEnabled {
		t.Fatalf("visual fields not copied")
	}
	if dup.CustomTitle != "Mine (Copy)" {
		t.Fatalf("custom title should get the copy suffix, got %q", dup.CustomTitle)
	}
	if dup.Impl.ExportSettings()["text"] != "dup me" {
		t.Fatalf("settings not round-tripped into the duplicate")
	}
	if len(c.Panels()) != 2 {
		t.Fatalf("duplicate should be attached")
	}
}

func TestAddPanelFailuresAreNotFatal(t *testing.T) {
	c := newTestContainer(t)
	if err := c.Registry.Register(tool.Registration{
		ID:    "Broken",
		Label: "Broken",
		New: func(x, y float64) (*tool.Panel, error) {
			return nil, errors.New("backing resource missing")
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := c.Registry.Register(tool.Registration{
		ID:    "Panicky",
		Label: "Panicky",
		New: func(x, y float64) (*tool.Panel, error) {
			panic("factory bug")
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if p := c.AddPanel("missing", 0, 0); p != nil {
		t.Fatalf("unknown type should create nothing")
	}
	if p := c.AddPanel("Broken", 0, 0); p != nil {
		t.Fatalf("failing factory should create nothing")
	}
	if p := c.AddPanel("Panicky", 0, 0); p != nil {
		t.Fatalf("panicking factory should create nothing")
	}
	if len(c.Panels()) != 0 {
		t.Fatalf("no panels should be attached, got %d", len(c.Panels()))
	}
}

func TestRemovePanelDisposes(t *testing.T) {
	c := newTestContainer(t)
	p := addTestPanel(t, c, 0, 0, 200, 100)
	impl := p.Impl.(*stubTool)

	c.RemovePanel(p)
	if !impl.disposed {
		t.Fatalf("removed panel must be disposed")
	}
	if len(c.Panels()) != 0 {
		t.Fatalf("panel should be detached")
	}
}

func TestUpdateGridSettingsRescalesPanels(t *testing.T) {
	c := newTestContainer(t)
	p := addTestPanel(t, c, 200, 200, 400, 300)

	next := c.Grid
	next.Multiplier = 2
	c.UpdateGridSettings(next)

	if c.Grid.Multiplier != 2 {
		t.Fatalf("grid settings not adopted")
	}
	// Screen geometry must be preserved across the resolution change.
	if p.X != 200 || p.Y != 200 || p.W != 400 || p.H != 300 {
		t.Fatalf("screen geometry changed: (%f,%f) %fx%f", p.X, p.Y, p.W, p.H)
	}
	if !c.Dirty() {
		t.Fatalf("a grid edit is a layout edit")
	}
}

func TestCallbackPanicsAreContained(t *testing.T) {
	c := newTestContainer(t)
	c.OnLayoutChanged = func(layout.Record) { panic("host bug") }
	c.OnInteractionChanged = func(dragging, resizing bool) { panic("host bug") }

	addTestPanel(t, c, 0, 0, 200, 100) // markDirty fires the callback
	c.interactionPass(press(50, 10))   // transition fires the callback
	if !c.entries[0].dragging {
		t.Fatalf("frame must survive callback panics")
	}
	c.interactionPass(release(50, 10))
}

func TestExportUsesCurrentGridSettings(t *testing.T) {
	c := newTestContainer(t)
	c.Grid = grid.Settings{AutoAdjust: true, Multiplier: 3, Subdivisions: 4, PaddingPx: 12}
	rec := c.Export()
	if rec.Grid != c.Grid {
		t.Fatalf("exported grid settings diverge: %+v", rec.Grid)
	}
}
