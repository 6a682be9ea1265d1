package chart

import (
	"fmt"
	"math"

	"github.com/vdobler/chart/scene"
)

// ----------------------------------------------------------------------------
// LegendState

// LegendState holds one visibility flag per series.
type LegendState struct {
	visible []bool
}

// NewLegendState returns a state with n visible series.
func NewLegendState(n int) *LegendState {
	l := &LegendState{}
	l.Resize(n)
	return l
}

// Len is the number of series.
func (l *LegendState) Len() int { return len(l.visible) }

// Visible reports whether series i is shown.
func (l *LegendState) Visible(i int) bool {
	return i >= 0 && i < len(l.visible) && l.visible[i]
}

// Toggle flips the visibility of series i. It reports false for an
// unknown series.
func (l *LegendState) Toggle(i int) bool {
	if i < 0 || i >= len(l.visible) {
		return false
	}
	l.visible[i] = !l.visible[i]
	return true
}

// Resize adapts l to n series. Existing flags are kept, new series are
// visible.
func (l *LegendState) Resize(n int) {
	for len(l.visible) < n {
		l.visible = append(l.visible, true)
	}
	l.visible = l.visible[:n]
}

// Selected returns the indices of the visible series, or of all series
// if none is visible.
func (l *LegendState) Selected() []int {
	var sel []int
	for i, v := range l.visible {
		if v {
			sel = append(sel, i)
		}
	}
	if len(sel) > 0 {
		return sel
	}
	for i := range l.visible {
		sel = append(sel, i)
	}
	return sel
}

// Clone returns an independent copy of l.
func (l *LegendState) Clone() *LegendState {
	return &LegendState{visible: append([]bool(nil), l.visible...)}
}

// ----------------------------------------------------------------------------
// LegendLayout

// LegendGeometry describes where legend items may be placed.
type LegendGeometry struct {
	X, Y       float64 // origin in pixels
	Width      float64 // row width budget, 0 means up to the chart edge
	ChartWidth float64
	FontSize   float64
}

// LegendItem is one placed legend entry: a swatch at (X,Y) followed by
// the label.
type LegendItem struct {
	Index int
	Label string
	Row   int
	X, Y  float64
	W     float64 // swatch, gap and label
}

func (g LegendGeometry) swatch() float64 { return g.FontSize }
func (g LegendGeometry) gap() float64    { return g.FontSize / 3 }
func (g LegendGeometry) spacing() float64 {
	return g.FontSize
}
func (g LegendGeometry) rowHeight() float64 { return 1.5 * g.FontSize }

// limit is the largest x an item may extend to.
func (g LegendGeometry) limit() float64 {
	room := g.ChartWidth - g.X
	if g.Width > 0 {
		room = math.Min(g.Width, room)
	}
	return g.X + room
}

// LayoutLegend packs labels left to right starting at the origin and
// wraps to a new row when an item would pass the width budget. A row
// always holds at least one item.
func LayoutLegend(labels []string, measure func(string) float64, geo LegendGeometry) []LegendItem {
	items := make([]LegendItem, len(labels))
	x, y, row := geo.X, geo.Y, 0
	limit := geo.limit()
	for i, l := range labels {
		w := geo.swatch() + geo.gap() + measure(l)
		if x > geo.X && x+w > limit {
			x, y, row = geo.X, y+geo.rowHeight(), row+1
		}
		items[i] = LegendItem{Index: i, Label: l, Row: row, X: x, Y: y, W: w}
		x += w + geo.spacing()
	}
	return items
}

// drawLegend renders the legend of ctx. Clicking an entry calls toggle.
func drawLegend(ctx *Context, toggle func(int)) error {
	cfg := ctx.Config
	geo := LegendGeometry{
		X:          cfg.Legend.X * cfg.Width,
		Y:          cfg.Legend.Y * cfg.Height,
		Width:      cfg.Legend.Width,
		ChartWidth: cfg.Width,
		FontSize:   cfg.Legend.FontSize,
	}
	measure := func(s string) float64 { return ctx.Surface.Measure(s, geo.FontSize) }
	items := LayoutLegend(ctx.Table.Series, measure, geo)

	gid, err := ctx.Surface.Append(ctx.Target.ID, &scene.Group{Attrs: scene.Attrs{
		ID: ctx.Target.ID + "-legend", Class: "legend"}})
	if err != nil {
		return err
	}
	for _, it := range items {
		opacity := 0.0
		if !ctx.Legend.Visible(it.Index) {
			opacity = 0.3
		}
		color := colorAt(cfg.Colors, it.Index)
		id, err := ctx.Surface.Append(gid, &scene.Group{Attrs: scene.Attrs{
			ID: fmt.Sprintf("%s-%d", gid, it.Index), Class: "legend-item", Title: it.Label}})
		if err != nil {
			return err
		}
		sw := geo.swatch()
		if _, err := ctx.Surface.Append(id, &scene.Rect{
			Style: scene.Style{Fill: color, Opacity: opacity},
			X:     it.X, Y: it.Y, W: sw, H: sw,
		}); err != nil {
			return err
		}
		if _, err := ctx.Surface.Append(id, &scene.Text{
			Style:    scene.Style{Fill: "black", Opacity: opacity},
			X:        it.X + sw + geo.gap(),
			Y:        it.Y + sw/2,
			Text:     it.Label,
			Size:     geo.FontSize,
			Anchor:   scene.AnchorStart,
			Baseline: scene.BaselineMiddle,
		}); err != nil {
			return err
		}
		i := it.Index
		if err := ctx.Surface.On(id, scene.Click, func(scene.Event) { toggle(i) }); err != nil {
			return err
		}
	}
	return nil
}
