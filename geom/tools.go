// Package geom contains the chart variants: bars (simple, grouped,
// stacked, horizontal and sortable), lines with dots, scatter plots and
// histograms.
package geom

import (
	"math"
	"strings"

	"github.com/vdobler/chart"
	"github.com/vdobler/chart/scene"
)

// canonicRect returns the rectangle spanned by the corners (x,y) and
// (u,v), i.e. with a non-negative width and height.
func canonicRect(x, y, u, v float64) *scene.Rect {
	if x > u {
		x, u = u, x
	}
	if y > v {
		y, v = v, y
	}
	return &scene.Rect{X: x, Y: y, W: u - x, H: v - y}
}

// plotRange returns the horizontal and vertical pixel range of the plot
// area of ctx, the vertical one running upwards.
func plotRange(ctx *chart.Context) (x, y chart.Interval) {
	b := ctx.Config.PlotBox()
	return chart.Interval{Min: b.X0, Max: b.X1}, chart.Interval{Min: b.Y1, Max: b.Y0}
}

// selectedValues collects the values of all selected series.
func selectedValues(ctx *chart.Context) []float64 {
	var vs []float64
	for _, j := range ctx.Selected() {
		vs = append(vs, ctx.Table.Column(j)...)
	}
	return vs
}

// readout formats a hover text like "2nd Rev: 12.5".
func readout(value float64, names ...string) string {
	var parts []string
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ") + ": " + chart.FormatNumber(value, -1)
}

// finite drops NaN and infinite values.
func finite(xs []float64) []float64 {
	out := xs[:0:0]
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
