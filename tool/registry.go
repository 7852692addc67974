package tool

import (
	"fmt"
	"sort"
	"strings"
)

// Registration maps a stable panel-type id to its factory. Category is a
// path used to build the add-panel menu tree ("charts" > "frame stats").
type Registration struct {
	ID          string
	Label       string
	Description string
	Category    []string
	New         func(x, y float64) (*Panel, error)
}

// Registry is the single source of truth mapping persisted type tags to
// constructors. A tag that doesn't resolve here is a data-loss condition for
// the reconciler, not a cue to go hunting by reflection.
type Registry struct {
	regs map[string]Registration
}

func NewRegistry() *Registry {
	return &Registry{regs: make(map[string]Registration)}
}

func (r *Registry) Register(reg Registration) error {
	if reg.ID == "" {
		return fmt.Errorf("registry: registration has empty id")
	}
	if reg.New == nil {
		return fmt.Errorf("registry: %q has no factory", reg.ID)
	}
	if _, ok := r.regs[reg.ID]; ok {
		return fmt.Errorf("registry: %q already registered", reg.ID)
	}
	r.regs[reg.ID] = reg
	return nil
}

func (r *Registry) Unregister(id string) bool {
	if _, ok := r.regs[id]; !ok {
		return false
	}
	delete(r.regs, id)
	return true
}

func (r *Registry) Find(id string) (Registration, bool) {
	reg, ok := r.regs[id]
	return reg, ok
}

// All returns registrations sorted by category path then label so menu order
// is stable across frames.
func (r *Registry) All() []Registration {
	out := make([]Registration, 0, len(r.regs))
	for _, reg := range r.regs {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool {
		ci := strings.Join(out[i].Category, "/")
		cj := strings.Join(out[j].Category, "/")
		if ci != cj {
			return ci < cj
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (r *Registry) Len() int {
	return len(r.regs)
}
