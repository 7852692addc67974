package grid

import (
	"github.com/milk9111/toolgrid/common"
	"github.com/milk9111/toolgrid/tool"
)

const (
	minManual = 1
	maxManual = 100

	// 16:9 reference used to derive the automatic resolution. The automatic
	// grid depends only on the multiplier, never on the pixel canvas, so a
	// window resize keeps every panel's cell footprint.
	autoColumnsBase = 16
	autoRowsBase    = 9
)

// Settings describes one layout's grid resolution and snap granularity.
type Settings struct {
	AutoAdjust   bool    `json:"autoAdjust"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	Multiplier   int     `json:"multiplier"`
	Subdivisions int     `json:"subdivisions"`
	PaddingPx    float64 `json:"paddingPx"`
}

func DefaultSettings() Settings {
	return Settings{
		AutoAdjust:   true,
		Columns:      autoColumnsBase,
		Rows:         autoRowsBase,
		Multiplier:   1,
		Subdivisions: 2,
		PaddingPx:    8,
	}
}

func (s Settings) EffectiveColumns() int {
	if s.AutoAdjust {
		m := s.Multiplier
		if m < 1 {
			m = 1
		}
		return autoColumnsBase * m
	}
	return common.ClampInt(s.Columns, minManual, maxManual)
}

func (s Settings) EffectiveRows() int {
	if s.AutoAdjust {
		m := s.Multiplier
		if m < 1 {
			m = 1
		}
		return autoRowsBase * m
	}
	return common.ClampInt(s.Rows, minManual, maxManual)
}

// CellSize returns the pixel size of one grid cell for the given content area.
func (s Settings) CellSize(contentW, contentH float64) (float64, float64) {
	return contentW / float64(s.EffectiveColumns()), contentH / float64(s.EffectiveRows())
}

// SnapStep is the pixel pitch drag releases snap to on each axis.
func (s Settings) SnapStep(contentW, contentH float64) (float64, float64) {
	cw, ch := s.CellSize(contentW, contentH)
	sub := s.Subdivisions
	if sub < 1 {
		sub = 1
	}
	return cw / float64(sub), ch / float64(sub)
}

// ToGrid rewrites p's grid coordinates from its pixel geometry.
func ToGrid(s Settings, contentW, contentH float64, p *tool.Panel) {
	cw, ch := s.CellSize(contentW, contentH)
	if cw <= 0 || ch <= 0 {
		return
	}
	p.GridCol = p.X / cw
	p.GridRow = p.Y / ch
	p.GridColSpan = p.W / cw
	p.GridRowSpan = p.H / ch
	p.HasGridCoords = true
}

// ToPixels projects p's grid coordinates into pixel geometry, clamped to the
// minimum panel size.
func ToPixels(s Settings, contentW, contentH float64, p *tool.Panel) {
	if !p.HasGridCoords {
		return
	}
	cw, ch := s.CellSize(contentW, contentH)
	p.X = p.GridCol * cw
	p.Y = p.GridRow * ch
	p.W = p.GridColSpan * cw
	p.H = p.GridRowSpan * ch
	if p.W < tool.MinPanelWidth {
		p.W = tool.MinPanelWidth
	}
	if p.H < tool.MinPanelHeight {
		p.H = tool.MinPanelHeight
	}
}

// Sync runs the per-frame grid pass: panels that already have grid
// coordinates are re-projected into the current content size, panels that
// don't yet are adopted into grid units once and become grid-authoritative.
func Sync(s Settings, contentW, contentH float64, panels []*tool.Panel) {
	for _, p := range panels {
		if p.HasGridCoords {
			ToPixels(s, contentW, contentH, p)
		} else {
			ToGrid(s, contentW, contentH, p)
		}
	}
}

// Update swaps in new settings and rescales every panel proportionally. If
// the effective resolution changed, each panel's grid coordinates are
// multiplied by newCols/oldCols and newRows/oldRows, which preserves its
// relative footprint, then re-projected to pixels with the new cell size.
func Update(cur *Settings, next Settings, contentW, contentH float64, panels []*tool.Panel) {
	oldCols, oldRows := cur.EffectiveColumns(), cur.EffectiveRows()
	*cur = next
	newCols, newRows := cur.EffectiveColumns(), cur.EffectiveRows()

	if oldCols == newCols && oldRows == newRows {
		Sync(*cur, contentW, contentH, panels)
		return
	}

	colScale := float64(newCols) / float64(oldCols)
	rowScale := float64(newRows) / float64(oldRows)
	for _, p := range panels {
		if !p.HasGridCoords {
			ToGrid(*cur, contentW, contentH, p)
			continue
		}
		p.GridCol *= colScale
		p.GridColSpan *= colScale
		p.GridRow *= rowScale
		p.GridRowSpan *= rowScale
		ToPixels(*cur, contentW, contentH, p)
	}
}
