package container

import (
	"log"
	"strings"

	"github.com/milk9111/toolgrid/tool"
)

// buildAddMenu builds the empty-canvas menu: registered kinds grouped by
// category path, saved presets per kind, then the layout actions.
func (c *Container) buildAddMenu(x, y float64) []menuItem {
	var items []menuItem
	byCategory := make(map[string][]menuItem)
	var categories []string

	for _, regn := range c.Registry.All() {
		regn := regn
		add := menuItem{
			label: regn.Label,
			action: func() {
				c.AddPanel(regn.ID, x, y)
			},
		}
		kind := []menuItem{add}
		if c.Presets != nil {
			presets, err := c.Presets.Load(regn.ID)
			if err != nil {
				log.Printf("container: presets for %q: %v", regn.ID, err)
			}
			for _, preset := range presets {
				preset := preset
				kind = append(kind, menuItem{
					label: regn.Label + ": " + preset.Name,
					action: func() {
						if p := c.AddPanel(regn.ID, x, y); p != nil && p.Impl != nil {
							p.Impl.ImportSettings(preset.Settings)
						}
					},
				})
			}
		}

		if len(regn.Category) == 0 {
			items = append(items, kind...)
			continue
		}
		key := strings.Join(regn.Category, " / ")
		if _, ok := byCategory[key]; !ok {
			categories = append(categories, key)
		}
		byCategory[key] = append(byCategory[key], kind...)
	}
	for _, key := range categories {
		items = append(items, menuItem{label: key, sub: byCategory[key]})
	}

	for _, e := range c.entries {
		if !e.panel.Visible {
			items = append(items, menuItem{label: "Show Hidden Panels", action: func() {
				for _, e := range c.entries {
					e.panel.Visible = true
				}
				c.markDirty()
			}})
			break
		}
	}

	items = append(items,
		menuItem{label: "Save Layout", action: func() {
			name := c.layoutName
			if name == "" {
				c.promptSaveAs()
				return
			}
			if err := c.SaveLayout(name); err != nil {
				log.Printf("container: save layout: %v", err)
			}
		}},
		menuItem{label: "Save Layout As...", action: c.promptSaveAs},
		menuItem{label: "Layouts...", action: func() { c.dlg.openLayoutManager() }},
		menuItem{label: "Grid Settings...", action: func() { c.modal.openGrid() }},
		menuItem{label: "Copy Layout JSON", action: c.CopyLayoutJSON},
	)
	return items
}

func (c *Container) promptSaveAs() {
	c.prompt.Open("Save layout as:", c.layoutName, func(name string) {
		if name == "" {
			return
		}
		if err := c.SaveLayout(name); err != nil {
			log.Printf("container: save layout %q: %v", name, err)
		}
	})
}

// buildPanelMenu builds the per-panel menu available in any mode.
func (c *Container) buildPanelMenu(p *tool.Panel) []menuItem {
	toggle := func(label string, get func() bool, set func(bool)) menuItem {
		state := "off"
		if get() {
			state = "on"
		}
		return menuItem{
			label: label + ": " + state,
			action: func() {
				set(!get())
				c.markDirty()
			},
		}
	}

	return []menuItem{
		{label: "Rename...", action: func() {
			c.prompt.Open("Panel title:", p.DisplayTitle(), func(name string) {
				p.CustomTitle = name
				c.markDirty()
			})
		}},
		{label: "Duplicate", action: func() {
			c.DuplicatePanel(p)
		}},
		{label: "Settings...", action: func() {
			c.modal.openPanel(p)
		}},
		{label: "Save Preset...", action: func() {
			c.prompt.Open("Preset name:", "", func(name string) {
				if name != "" {
					c.savePreset(p, name)
				}
			})
		}},
		toggle("Background", func() bool { return p.BackgroundEnabled }, func(v bool) { p.BackgroundEnabled = v }),
		toggle("Header", func() bool { return p.HeaderVisible }, func(v bool) { p.HeaderVisible = v }),
		toggle("Outline", func() bool { return p.OutlineEnabled }, func(v bool) { p.OutlineEnabled = v }),
		{label: "Hide", action: func() {
			p.Visible = false
			c.markDirty()
		}},
		{label: "Remove", action: func() {
			c.RemovePanel(p)
		}},
	}
}
