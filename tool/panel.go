package tool

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	MinPanelWidth  = 48
	MinPanelHeight = 32
)

// Frame carries the per-frame values a tool may want while rendering.
type Frame struct {
	Count    int
	TPS      float64
	FPS      float64
	EditMode bool
}

// Tool is the capability contract every panel kind implements. The layout
// engine never looks inside a tool; it renders it, asks it to describe its
// settings, and round-trips its settings as an opaque map.
type Tool interface {
	Render(dst *ebiten.Image, p *Panel, f Frame)
	DrawSettings(ui *SettingsUI)
	ExportSettings() map[string]any
	ImportSettings(settings map[string]any)
	Dispose()
}

// Color is the persisted RGBA used for panel backgrounds.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Panel is one draggable/resizable region on the canvas. Pixel geometry
// (X/Y/W/H) and grid geometry (GridCol..GridRowSpan) describe the same
// footprint; whichever was written last is re-derived into the other before
// the next frame's hit-testing.
type Panel struct {
	Id          string
	TypeTag     string
	Title       string
	CustomTitle string

	X, Y float64
	W, H float64

	GridCol       float64
	GridRow       float64
	GridColSpan   float64
	GridRowSpan   float64
	HasGridCoords bool

	Visible           bool
	BackgroundEnabled bool
	BackgroundColor   Color
	HeaderVisible     bool
	OutlineEnabled    bool

	Impl Tool
}

// NewPanel builds a panel with a fresh id and the default visual flags.
func NewPanel(typeTag, title string, impl Tool) *Panel {
	return &Panel{
		Id:                uuid.NewString(),
		TypeTag:           typeTag,
		Title:             title,
		W:                 MinPanelWidth * 4,
		H:                 MinPanelHeight * 4,
		Visible:           true,
		BackgroundEnabled: true,
		BackgroundColor:   Color{R: 0x10, G: 0x10, B: 0x18, A: 0xc8},
		HeaderVisible:     true,
		Impl:              impl,
	}
}

// DisplayTitle prefers the user's custom title over the kind's default.
func (p *Panel) DisplayTitle() string {
	if p.CustomTitle != "" {
		return p.CustomTitle
	}
	return p.Title
}

func (p *Panel) Dispose() {
	if p.Impl != nil {
		p.Impl.Dispose()
	}
}
