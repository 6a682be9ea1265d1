package geom

import (
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
)

// LineDot connects the values of each visible series by a line and marks
// every value with a dot. Categories are placed on a point scale.
type LineDot struct{}

func (LineDot) ShapeKind() string { return "circle" }

// Validate implements chart.Variant.
func (LineDot) Validate(t *data.Table) error { return t.Require(1) }

// ComputeDomain implements chart.Variant.
func (LineDot) ComputeDomain(ctx *chart.Context) error {
	xr, _ := plotRange(ctx)
	x := chart.NewPointScale(ctx.Table.Keys(), xr, ctx.Config.XAxis.Padding)
	ctx.Panel = chart.XYPanel(ctx, x, selectedValues(ctx))
	return nil
}

// DrawShapes implements chart.Variant.
func (LineDot) DrawShapes(ctx *chart.Context) error {
	t, p := ctx.Table, ctx.Panel
	x := p.X.(*chart.PointScale)
	y := p.ValueScale()
	st := ctx.Style.Line

	for _, j := range ctx.Selected() {
		color := ctx.Color(j)
		line := &scene.Path{Attrs: scene.Attrs{Class: "line", Title: t.Series[j]}, Style: st.Style}
		line.Stroke = color
		var dots []*scene.Circle
		var texts []string
		for _, row := range t.Rows {
			px, ok := x.Pos(row.Key)
			if !ok {
				continue
			}
			pt := scene.Point{X: px, Y: y.Map(row.Values[j])}
			line.Points = append(line.Points, pt)
			dots = append(dots, &scene.Circle{
				Attrs: scene.Attrs{Class: "dot", Title: row.Key},
				Style: scene.Style{Fill: color},
				CX:    pt.X, CY: pt.Y, R: st.DotRadius,
			})
			texts = append(texts, readout(row.Values[j], row.Key, t.Series[j]))
		}
		if _, err := ctx.Append(line); err != nil {
			return err
		}
		for i, d := range dots {
			if _, err := ctx.Shape(d, texts[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
