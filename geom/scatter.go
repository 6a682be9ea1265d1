package geom

import (
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
)

// Scatter draws a dot at (x, value) for every row and visible series.
// Column 0 must be numeric.
type Scatter struct{}

func (Scatter) ShapeKind() string { return "circle" }

// Validate implements chart.Variant.
func (Scatter) Validate(t *data.Table) error {
	if err := t.Require(1); err != nil {
		return err
	}
	return t.RequireNumericX()
}

// ComputeDomain implements chart.Variant.
func (Scatter) ComputeDomain(ctx *chart.Context) error {
	xr, _ := plotRange(ctx)
	xd := chart.LinearDomain(ctx.Table.Xs(), ctx.Config.XAxis.Padding)
	ctx.Panel = chart.XYPanel(ctx, chart.NewLinear(xd, xr), selectedValues(ctx))
	return nil
}

// DrawShapes implements chart.Variant.
func (Scatter) DrawShapes(ctx *chart.Context) error {
	t, p := ctx.Table, ctx.Panel
	for _, j := range ctx.Selected() {
		for _, row := range t.Rows {
			pt := p.MapXY(row.X, row.Values[j])
			dot := &scene.Circle{
				Attrs: scene.Attrs{Class: "dot", Title: t.Series[j]},
				Style: scene.Style{Fill: ctx.Color(j), Opacity: 0.8},
				CX:    pt.X, CY: pt.Y, R: ctx.Style.Line.DotRadius,
			}
			if _, err := ctx.Shape(dot, readout(row.Values[j], row.Key, t.Series[j])); err != nil {
				return err
			}
		}
	}
	return nil
}
