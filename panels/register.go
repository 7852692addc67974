package panels

import "github.com/milk9111/toolgrid/tool"

const (
	TagLabel      = "builtin.label"
	TagFrameStats = "builtin.framestats"
	TagTable      = "builtin.table"
	TagScript     = "builtin.script"
)

// Hooks are the host-side data sources the built-in panels sample from.
type Hooks struct {
	// TableRows feeds the value table; nil leaves it empty.
	TableRows func() [][2]string
}

// RegisterBuiltins adds the built-in panel kinds to a registry.
func RegisterBuiltins(reg *tool.Registry, hooks Hooks) error {
	regs := []tool.Registration{
		{
			ID:          TagLabel,
			Label:       "Label",
			Description: "Static text",
			Category:    []string{"widgets"},
			New: func(x, y float64) (*tool.Panel, error) {
				p := tool.NewPanel(TagLabel, "Label", &Label{Text: "text"})
				p.X, p.Y = x, y
				return p, nil
			},
		},
		{
			ID:          TagFrameStats,
			Label:       "Frame Stats",
			Description: "FPS/TPS sparkline",
			Category:    []string{"charts"},
			New: func(x, y float64) (*tool.Panel, error) {
				p := tool.NewPanel(TagFrameStats, "Frame Stats", &FrameStats{})
				p.X, p.Y = x, y
				return p, nil
			},
		},
		{
			ID:          TagTable,
			Label:       "Value Table",
			Description: "Key/value pairs from the host sampler",
			Category:    []string{"tables"},
			New: func(x, y float64) (*tool.Panel, error) {
				p := tool.NewPanel(TagTable, "Values", NewValueTable(hooks.TableRows))
				p.X, p.Y = x, y
				return p, nil
			},
		},
		{
			ID:          TagScript,
			Label:       "Script",
			Description: "Tengo snippet run every frame",
			Category:    []string{"widgets"},
			New: func(x, y float64) (*tool.Panel, error) {
				p := tool.NewPanel(TagScript, "Script", NewScript(""))
				p.X, p.Y = x, y
				return p, nil
			},
		},
	}
	for _, r := range regs {
		if err := reg.Register(r); err != nil {
			return err
		}
	}
	return nil
}
