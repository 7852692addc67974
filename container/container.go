package container

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/layout"
	"github.com/milk9111/toolgrid/tool"
)

// Container hosts the live panel set and runs the whole per-frame pipeline
// from its Draw call: grid pass, panel rendering, interaction, then menus and
// modals. Everything happens synchronously on the render thread.
type Container struct {
	Registry *tool.Registry
	Grid     grid.Settings
	Store    *layout.Store
	Presets  *layout.PresetStore

	EditMode       bool
	ClipboardReady bool

	// OnLayoutChanged fires on every structural or geometric edit, with the
	// current exported record. Suppressed while a record is being applied.
	OnLayoutChanged func(layout.Record)
	// OnSavePreset fires when the user saves one panel's settings as a
	// reusable preset.
	OnSavePreset func(typeTag, name string, settings map[string]any)
	// OnInteractionChanged fires when the aggregate drag/resize flags
	// transition.
	OnInteractionChanged func(dragging, resizing bool)

	entries    []*entry
	layoutName string
	dirty      bool

	anyDragging bool
	anyResizing bool

	// applying > 0 suppresses dirty marking: restoring persisted state is
	// not a user edit.
	applying int

	// Structural edits requested from menu callbacks during the panel loop
	// are staged here and run after the loop.
	deferred  []func()
	iterating bool

	frame  tool.Frame
	prompt *Prompt
	menu   *contextMenu
	modal  *settingsModal
	dlg    *dialogs

	contentW, contentH float64
	originX, originY   float64
}

func New(reg *tool.Registry, store *layout.Store, presets *layout.PresetStore) *Container {
	c := &Container{
		Registry: reg,
		Grid:     grid.DefaultSettings(),
		Store:    store,
		Presets:  presets,
		prompt:   NewPrompt(),
		menu:     &contextMenu{},
		modal:    &settingsModal{},
	}
	c.dlg = newDialogs(c)
	return c
}

// Update pumps the modal dialog UI and the prompt. Call once per tick before
// Draw.
func (c *Container) Update() {
	if c.prompt.Update() {
		return
	}
	c.dlg.update()
}

// Draw runs one frame of the overlay. in is the pointer snapshot for this
// frame, in screen coordinates.
func (c *Container) Draw(screen *ebiten.Image, in InputSnapshot) {
	c.frame.Count++
	c.frame.TPS = ebiten.ActualTPS()
	c.frame.FPS = ebiten.ActualFPS()
	c.frame.EditMode = c.EditMode

	bounds := screen.Bounds()
	pad := c.Grid.PaddingPx
	c.originX = float64(bounds.Min.X) + pad
	c.originY = float64(bounds.Min.Y) + pad
	c.contentW = float64(bounds.Dx()) - 2*pad
	c.contentH = float64(bounds.Dy()) - 2*pad
	if c.contentW < 1 || c.contentH < 1 {
		return
	}

	local := in.local(c.originX, c.originY)
	panelInput := local
	if c.uiBlocked() {
		// A menu or modal owns the pointer; panels still render but see no
		// input this frame.
		panelInput = InputSnapshot{CursorX: -1, CursorY: -1}
	}

	c.gridPass()
	c.renderPass(screen)
	c.interactionPass(panelInput)
	c.flushDeferred()
	c.modal.update(local, c)
	c.handleRightClick(local)

	c.menu.draw(screen, c.originX, c.originY)
	c.modal.draw(screen, c)
	c.prompt.Draw(screen)
	c.dlg.draw(screen)
}

// gridPass keeps pixel and grid geometry consistent: panels being dragged or
// resized are pixel-authoritative this frame, everything else re-projects
// from grid units (or is adopted into them).
func (c *Container) gridPass() {
	for _, e := range c.entries {
		if e.interacting() {
			continue
		}
		grid.Sync(c.Grid, c.contentW, c.contentH, []*tool.Panel{e.panel})
	}
}

func (c *Container) interactionPass(in InputSnapshot) {
	top := c.topHitEntry(in)
	for i, e := range c.entries {
		c.stepInteraction(e, in, c.contentW, c.contentH, i == top && c.EditMode)
	}

	dragging, resizing := false, false
	for _, e := range c.entries {
		dragging = dragging || e.dragging
		resizing = resizing || e.resizing
	}
	if dragging != c.anyDragging || resizing != c.anyResizing {
		c.anyDragging, c.anyResizing = dragging, resizing
		c.notifyInteraction(dragging, resizing)
	}
}

func (c *Container) uiBlocked() bool {
	return c.menu.open || c.modal.open || c.prompt.IsOpen() || c.dlg.visible()
}

// Panels returns the live panel list in draw order.
func (c *Container) Panels() []*tool.Panel {
	out := make([]*tool.Panel, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.panel
	}
	return out
}

func (c *Container) AnyDragging() bool { return c.anyDragging }
func (c *Container) AnyResizing() bool { return c.anyResizing }
func (c *Container) Dirty() bool       { return c.dirty }
func (c *Container) LayoutName() string {
	return c.layoutName
}

// AddPanel instantiates a registered kind at the given canvas position.
// Factory failure is logged and means "no panel created".
func (c *Container) AddPanel(typeTag string, x, y float64) *tool.Panel {
	regn, ok := c.Registry.Find(typeTag)
	if !ok {
		log.Printf("container: unknown panel type %q", typeTag)
		return nil
	}
	p, err := safeNew(regn, x, y)
	if err != nil {
		log.Printf("container: create %q: %v", typeTag, err)
		return nil
	}
	if p == nil {
		return nil
	}
	p.X, p.Y = x, y
	grid.ToGrid(c.Grid, c.contentW, c.contentH, p)
	c.attach(p)
	c.markDirty()
	return p
}

func safeNew(regn tool.Registration, x, y float64) (p *tool.Panel, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("factory panic: %v", r)
		}
	}()
	return regn.New(x, y)
}

func (c *Container) RemovePanel(p *tool.Panel) {
	for i, e := range c.entries {
		if e.panel != p {
			continue
		}
		p.Dispose()
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		c.markDirty()
		return
	}
}

// DuplicatePanel re-invokes the original factory, copies the visual and grid
// fields with a small offset, and round-trips the settings blob into the new
// panel.
func (c *Container) DuplicatePanel(src *tool.Panel) *tool.Panel {
	regn, ok := c.Registry.Find(src.TypeTag)
	if !ok {
		log.Printf("container: cannot duplicate %q: type not registered", src.TypeTag)
		return nil
	}
	dup, err := safeNew(regn, src.X+16, src.Y+16)
	if err != nil || dup == nil {
		log.Printf("container: duplicate %q: %v", src.TypeTag, err)
		return nil
	}
	dup.Title = src.Title
	if src.CustomTitle != "" {
		dup.CustomTitle = src.CustomTitle + " (Copy)"
	}
	dup.X, dup.Y = src.X+16, src.Y+16
	dup.W, dup.H = src.W, src.H
	dup.Visible = src.Visible
	dup.BackgroundEnabled = src.BackgroundEnabled
	dup.BackgroundColor = src.BackgroundColor
	dup.HeaderVisible = src.HeaderVisible
	dup.OutlineEnabled = src.OutlineEnabled
	if src.Impl != nil && dup.Impl != nil {
		dup.Impl.ImportSettings(src.Impl.ExportSettings())
	}
	grid.ToGrid(c.Grid, c.contentW, c.contentH, dup)
	c.attach(dup)
	c.markDirty()
	return dup
}

func (c *Container) attach(p *tool.Panel) {
	c.entries = append(c.entries, &entry{panel: p})
}

// Export snapshots the live set under the current layout name.
func (c *Container) Export() layout.Record {
	return layout.Export(c.layoutName, c.Grid, c.Panels())
}

// ApplyRecord reconciles a record onto the live set. Dirty notification is
// suppressed for the duration; skipped entry ids are returned.
func (c *Container) ApplyRecord(rec layout.Record) []string {
	c.applying++
	defer func() { c.applying-- }()

	if rec.Grid != (grid.Settings{}) {
		c.Grid = rec.Grid
	}
	result, skipped := layout.Apply(c.Registry, rec, c.Panels())

	byPanel := make(map[*tool.Panel]*entry, len(c.entries))
	for _, e := range c.entries {
		byPanel[e.panel] = e
	}
	entries := make([]*entry, 0, len(result))
	for _, p := range result {
		if e, ok := byPanel[p]; ok {
			e.dragging, e.resizing = false, false
			entries = append(entries, e)
		} else {
			entries = append(entries, &entry{panel: p})
		}
	}
	c.entries = entries
	c.layoutName = rec.Name
	c.dirty = false

	if c.contentW > 0 && c.contentH > 0 {
		grid.Sync(c.Grid, c.contentW, c.contentH, result)
	}
	return skipped
}

// UpdateGridSettings swaps in new grid settings and rescales every panel
// proportionally.
func (c *Container) UpdateGridSettings(next grid.Settings) {
	grid.Update(&c.Grid, next, c.contentW, c.contentH, c.Panels())
	c.markDirty()
}

// SaveLayout exports the live set and writes it through the store.
func (c *Container) SaveLayout(name string) error {
	if c.Store == nil {
		return fmt.Errorf("container: no layout store configured")
	}
	rec := layout.Export(name, c.Grid, c.Panels())
	saved, err := c.Store.Save(rec)
	if err != nil {
		return err
	}
	c.layoutName = saved
	c.dirty = false
	return nil
}

// LoadLayout reads a named record from the store and applies it. Skipped
// entries are logged, not fatal.
func (c *Container) LoadLayout(name string) error {
	if c.Store == nil {
		return fmt.Errorf("container: no layout store configured")
	}
	rec, err := c.Store.Load(name)
	if err != nil {
		return err
	}
	if skipped := c.ApplyRecord(rec); len(skipped) > 0 {
		log.Printf("container: layout %q: %d entries lost: %v", name, len(skipped), skipped)
	}
	return nil
}

// RequestLoadLayout loads immediately when clean; otherwise asks for
// confirmation first.
func (c *Container) RequestLoadLayout(name string) {
	if !c.dirty {
		if err := c.LoadLayout(name); err != nil {
			log.Printf("container: load %q: %v", name, err)
		}
		return
	}
	c.dlg.openConfirm(fmt.Sprintf("Discard unsaved changes and load %q?", name), func() {
		if err := c.LoadLayout(name); err != nil {
			log.Printf("container: load %q: %v", name, err)
		}
	})
}

// CopyLayoutJSON puts the exported record on the system clipboard.
func (c *Container) CopyLayoutJSON() {
	if !c.ClipboardReady {
		log.Printf("container: clipboard unavailable")
		return
	}
	data, err := json.MarshalIndent(c.Export(), "", "  ")
	if err != nil {
		log.Printf("container: marshal layout: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

func (c *Container) markDirty() {
	if c.applying > 0 {
		return
	}
	c.dirty = true
	if c.OnLayoutChanged == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("container: OnLayoutChanged panicked: %v", r)
		}
	}()
	c.OnLayoutChanged(c.Export())
}

func (c *Container) notifyInteraction(dragging, resizing bool) {
	if c.OnInteractionChanged == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("container: OnInteractionChanged panicked: %v", r)
		}
	}()
	c.OnInteractionChanged(dragging, resizing)
}

func (c *Container) savePreset(p *tool.Panel, name string) {
	if p.Impl == nil {
		return
	}
	settings := p.Impl.ExportSettings()
	if c.Presets != nil {
		if err := c.Presets.Save(p.TypeTag, name, settings); err != nil {
			log.Printf("container: save preset %q: %v", name, err)
		}
	}
	if c.OnSavePreset == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("container: OnSavePreset panicked: %v", r)
		}
	}()
	c.OnSavePreset(p.TypeTag, name, settings)
}

// enqueue stages a structural edit; edits requested while the panel loop is
// running are applied after it completes.
func (c *Container) enqueue(fn func()) {
	if !c.iterating {
		fn()
		return
	}
	c.deferred = append(c.deferred, fn)
}

func (c *Container) flushDeferred() {
	for len(c.deferred) > 0 {
		pending := c.deferred
		c.deferred = nil
		for _, fn := range pending {
			fn()
		}
	}
}
