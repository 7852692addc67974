package container

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// dialogs hosts the ebitenui overlays: the unsaved-changes confirm and the
// layout manager. Buttons use colored nine-slices and the built-in basic
// font so no theme fonts need loading.
type dialogs struct {
	c     *Container
	ui    *ebitenui.UI
	root  *widget.Container
	face  ebtext.Face
	shown bool
}

var (
	dlgDimColor    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 150}
	dlgPanelColor  = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 255}
	dlgButtonColor = color.NRGBA{R: 0x38, G: 0x38, B: 0x44, A: 255}
	dlgDangerColor = color.NRGBA{R: 0x58, G: 0x28, B: 0x28, A: 255}
	dlgTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newDialogs(c *Container) *dialogs {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &dialogs{
		c:    c,
		ui:   &ebitenui.UI{Container: root},
		root: root,
		face: face,
	}
}

func (d *dialogs) visible() bool { return d.shown }

func (d *dialogs) update() {
	if !d.shown {
		return
	}
	d.ui.Update()
}

func (d *dialogs) draw(screen *ebiten.Image) {
	if !d.shown {
		return
	}
	d.ui.Draw(screen)
}

func (d *dialogs) close() {
	d.root.RemoveChildren()
	d.shown = false
}

func (d *dialogs) show(panel *widget.Container) {
	d.root.RemoveChildren()

	dim := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(dlgDimColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	dim.AddChild(panel)
	d.root.AddChild(dim)
	d.shown = true
}

func (d *dialogs) newPanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(dlgPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
	)
}

func (d *dialogs) newButton(label string, bg color.NRGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(bg),
			Pressed: imageui.NewNineSliceColor(bg),
		}),
		widget.ButtonOpts.Text(label, &d.face, &widget.ButtonTextColor{Idle: dlgTextColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.MinSize(140, 26),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (d *dialogs) newLabel(text string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, &d.face, dlgTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// openConfirm shows a yes/no dialog and runs onYes if confirmed.
func (d *dialogs) openConfirm(message string, onYes func()) {
	panel := d.newPanel()
	panel.AddChild(d.newLabel(message))
	panel.AddChild(d.newButton("Yes", dlgDangerColor, func() {
		d.close()
		onYes()
	}))
	panel.AddChild(d.newButton("No", dlgButtonColor, func() {
		d.close()
	}))
	d.show(panel)
}

// openLayoutManager lists the saved layouts with load and delete actions.
func (d *dialogs) openLayoutManager() {
	panel := d.newPanel()
	panel.AddChild(d.newLabel("Layouts"))

	names, err := d.c.Store.List()
	if err != nil {
		log.Printf("container: list layouts: %v", err)
	}
	if len(names) == 0 {
		panel.AddChild(d.newLabel("(no saved layouts)"))
	}
	for _, name := range names {
		name := name
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		row.AddChild(d.newButton(name, dlgButtonColor, func() {
			d.close()
			d.c.RequestLoadLayout(name)
		}))
		row.AddChild(d.newButton("delete", dlgDangerColor, func() {
			d.close()
			d.c.dlg.openConfirm("Delete layout \""+name+"\"?", func() {
				if err := d.c.Store.Delete(name); err != nil {
					log.Printf("container: delete layout %q: %v", name, err)
				}
				d.c.dlg.openLayoutManager()
			})
		}))
		panel.AddChild(row)
	}

	panel.AddChild(d.newButton("Save current as...", dlgButtonColor, func() {
		d.close()
		d.c.promptSaveAs()
	}))
	panel.AddChild(d.newButton("Close", dlgButtonColor, func() {
		d.close()
	}))
	d.show(panel)
}
