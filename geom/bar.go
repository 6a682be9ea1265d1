package geom

import (
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
)

// ----------------------------------------------------------------------------
// Bar

// Bar draws one rectangle per row and visible series, measured from the
// baseline. Series are dodged inside the category band or, with the
// stacked option, stacked: positive values upwards from the last positive
// total of the row, negative ones downwards from the last negative total.
// A single series is colored by sign.
type Bar struct{}

func (Bar) ShapeKind() string { return "rect" }

// Validate implements chart.Variant.
func (Bar) Validate(t *data.Table) error { return t.Require(1) }

// ComputeDomain implements chart.Variant.
func (Bar) ComputeDomain(ctx *chart.Context) error {
	ctx.Panel = chart.BarPanel(ctx, ctx.Table.Keys())
	return nil
}

// DrawShapes implements chart.Variant.
func (b Bar) DrawShapes(ctx *chart.Context) error {
	rects, bars := b.rects(ctx)
	for i, bar := range bars {
		r := canonicRect(rects.Corners(i))
		r.Class = "bar"
		r.Title = bar.key
		r.Style = ctx.Style.Bar.Stroke
		r.Fill = bar.color
		if _, err := ctx.Shape(r, readout(bar.value, bar.label)); err != nil {
			return err
		}
	}
	return nil
}

// barInfo describes the rectangle of the same index returned by rects.
type barInfo struct {
	key   string
	label string
	color string
	value float64
}

// rects returns the pixel rectangles of all bars in drawing order.
func (Bar) rects(ctx *chart.Context) (data.Rects, []barInfo) {
	cfg, p, t := ctx.Config, ctx.Panel, ctx.Table
	cat, val := p.Category(), p.ValueScale()
	sel := ctx.Selected()
	single := t.SingleSeries()

	rects := make(data.Rects, 0, len(t.Rows)*len(sel))
	info := make([]barInfo, 0, cap(rects))
	for i, row := range t.Rows {
		start, ok := cat.Pos(row.Key)
		if !ok {
			continue
		}
		for k, j := range sel {
			v := row.Values[j]
			var from, to float64
			off := p.Inner.At(k)
			if cfg.Stacked {
				from, to = ctx.Stack.Push(i, v)
				off = p.Inner.At(0)
			} else {
				from, to = p.Value.Baseline, v
			}

			c0 := start + off
			c1 := c0 + p.Inner.Bandwidth()
			r := data.Rect{X0: c0, Y0: val.Map(from), X1: c1, Y1: val.Map(to)}
			if cfg.Horizontal {
				r = r.Transpose()
			}
			rects = append(rects, r)

			bi := barInfo{key: row.Key, value: v, color: ctx.Color(j)}
			bi.label = row.Key + " " + t.Series[j]
			if single {
				bi.label = row.Key
				bi.color = ctx.Color(0)
				if v < 0 {
					bi.color = ctx.Color(1)
				}
			}
			info = append(info, bi)
		}
	}
	return rects, info
}
