package tool

import "testing"

func noopFactory(typeTag string) func(x, y float64) (*Panel, error) {
	return func(x, y float64) (*Panel, error) {
		p := NewPanel(typeTag, typeTag, nil)
		p.X, p.Y = x, y
		return p, nil
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Registration{ID: "a", Label: "A", New: noopFactory("a")}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(Registration{ID: "a", Label: "A again", New: noopFactory("a")}); err == nil {
		t.Fatalf("duplicate id should fail")
	}
	if err := r.Register(Registration{Label: "no id", New: noopFactory("x")}); err == nil {
		t.Fatalf("empty id should fail")
	}
	if err := r.Register(Registration{ID: "no-factory"}); err == nil {
		t.Fatalf("nil factory should fail")
	}

	reg, ok := r.Find("a")
	if !ok || reg.Label != "A" {
		t.Fatalf("find failed: %v %v", reg, ok)
	}
	if _, ok := r.Find("missing"); ok {
		t.Fatalf("find should miss unknown id")
	}

	if !r.Unregister("a") {
		t.Fatalf("unregister should report true for known id")
	}
	if r.Unregister("a") {
		t.Fatalf("unregister should report false for removed id")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryAllSortedByCategoryThenLabel(t *testing.T) {
	r := NewRegistry()
	regs := []Registration{
		{ID: "3", Label: "Zeta", Category: []string{"charts"}, New: noopFactory("3")},
		{ID: "1", Label: "Alpha", Category: []string{"charts"}, New: noopFactory("1")},
		{ID: "2", Label: "Mid", Category: []string{"basic"}, New: noopFactory("2")},
	}
	for _, reg := range regs {
		if err := r.Register(reg); err != nil {
			t.Fatalf("register %q: %v", reg.ID, err)
		}
	}

	all := r.All()
	want := []string{"2", "1", "3"}
	for i, id := range want {
		if all[i].ID != id {
			t.Fatalf("order wrong at %d: expected %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestPanelDisplayTitle(t *testing.T) {
	p := NewPanel("tag", "Default", nil)
	if p.DisplayTitle() != "Default" {
		t.Fatalf("expected default title")
	}
	p.CustomTitle = "Mine"
	if p.DisplayTitle() != "Mine" {
		t.Fatalf("expected custom title to win")
	}
	if p.Id == "" {
		t.Fatalf("panel should get an id")
	}
	p2 := NewPanel("tag", "Default", nil)
	if p2.Id == p.Id {
		t.Fatalf("ids should be unique")
	}
}
