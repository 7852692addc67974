package layout

import (
	"github.com/milk9111/toolgrid/grid"
	"github.com/milk9111/toolgrid/tool"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Snapshot is the persisted form of one panel. Settings is whatever the
// panel's tool exported; the engine never interprets it.
type Snapshot struct {
	Id                string         `json:"id"`
	TypeTag           string         `json:"typeTag"`
	Title             string         `json:"title"`
	CustomTitle       string         `json:"customTitle,omitempty"`
	Position          Point          `json:"position"`
	Size              Size           `json:"size"`
	Visible           bool           `json:"visible"`
	BackgroundEnabled bool           `json:"backgroundEnabled"`
	BackgroundColor   tool.Color     `json:"backgroundColor"`
	HeaderVisible     bool           `json:"headerVisible"`
	OutlineEnabled    bool           `json:"outlineEnabled"`
	GridCol           float64        `json:"gridCol"`
	GridRow           float64        `json:"gridRow"`
	GridColSpan       float64        `json:"gridColSpan"`
	GridRowSpan       float64        `json:"gridRowSpan"`
	HasGridCoords     bool           `json:"hasGridCoords"`
	Settings          map[string]any `json:"settings,omitempty"`
}

// Record is one named layout: grid settings plus an ordered panel list.
type Record struct {
	Name   string        `json:"name"`
	Grid   grid.Settings `json:"gridSettings"`
	Panels []Snapshot    `json:"panels"`
}

// Export snapshots every live panel plus the grid settings in effect.
func Export(name string, g grid.Settings, live []*tool.Panel) Record {
	rec := Record{Name: name, Grid: g, Panels: make([]Snapshot, 0, len(live))}
	for _, p := range live {
		rec.Panels = append(rec.Panels, Capture(p))
	}
	return rec
}

// Capture snapshots a single panel including its tool's settings export.
func Capture(p *tool.Panel) Snapshot {
	s := Snapshot{
		Id:                p.Id,
		TypeTag:           p.TypeTag,
		Title:             p.Title,
		CustomTitle:       p.CustomTitle,
		Position:          Point{X: p.X, Y: p.Y},
		Size:              Size{W: p.W, H: p.H},
		Visible:           p.Visible,
		BackgroundEnabled: p.BackgroundEnabled,
		BackgroundColor:   p.BackgroundColor,
		HeaderVisible:     p.HeaderVisible,
		OutlineEnabled:    p.OutlineEnabled,
		GridCol:           p.GridCol,
		GridRow:           p.GridRow,
		GridColSpan:       p.GridColSpan,
		GridRowSpan:       p.GridRowSpan,
		HasGridCoords:     p.HasGridCoords,
	}
	if p.Impl != nil {
		s.Settings = p.Impl.ExportSettings()
	}
	return s
}

// restore overwrites a live panel's fields from a snapshot. The panel object
// itself is kept; only identity, geometry, flags, and settings change.
func restore(s Snapshot, p *tool.Panel) {
	p.Id = s.Id
	p.TypeTag = s.TypeTag
	p.Title = s.Title
	p.CustomTitle = s.CustomTitle
	p.X, p.Y = s.Position.X, s.Position.Y
	p.W, p.H = s.Size.W, s.Size.H
	p.Visible = s.Visible
	p.BackgroundEnabled = s.BackgroundEnabled
	p.BackgroundColor = s.BackgroundColor
	p.HeaderVisible = s.HeaderVisible
	p.OutlineEnabled = s.OutlineEnabled
	p.GridCol = s.GridCol
	p.GridRow = s.GridRow
	p.GridColSpan = s.GridColSpan
	p.GridRowSpan = s.GridRowSpan
	p.HasGridCoords = s.HasGridCoords
	if p.Impl != nil && s.Settings != nil {
		p.Impl.ImportSettings(s.Settings)
	}
}
