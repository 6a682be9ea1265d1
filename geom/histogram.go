package geom

import (
	"math"

	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"gonum.org/v1/plot/plotter"
)

// Histogram counts the values of column 0 in nBins contiguous buckets of
// equal width and draws one rectangle per bucket. Value columns are
// ignored.
type Histogram struct{}

func (Histogram) ShapeKind() string { return "rect" }

// Validate implements chart.Variant.
func (Histogram) Validate(t *data.Table) error {
	if err := t.Require(0); err != nil {
		return err
	}
	return t.RequireNumericX()
}

// Bins returns the buckets of the finite x values of t. It returns nil if
// there are none.
func (Histogram) Bins(t *data.Table, n int) ([]plotter.HistogramBin, error) {
	xs := finite(t.Xs())
	if len(xs) == 0 {
		return nil, nil
	}
	h, err := plotter.NewHist(plotter.Values(xs), n)
	if err != nil {
		return nil, err
	}
	return h.Bins, nil
}

// ComputeDomain implements chart.Variant.
func (hg Histogram) ComputeDomain(ctx *chart.Context) error {
	cfg := ctx.Config
	bins, err := hg.Bins(ctx.Table, cfg.NBins)
	if err != nil {
		return err
	}

	xd, top := chart.Interval{Min: 0, Max: 1}, 0.0
	if len(bins) > 0 {
		xd = chart.Interval{Min: bins[0].Min, Max: bins[len(bins)-1].Max}
		for _, b := range bins {
			top = math.Max(top, b.Weight)
		}
	}
	if top == 0 {
		top = 1
	}
	top *= 1 + cfg.YAxis.Padding

	xr, yr := plotRange(ctx)
	title := "count"
	if cfg.YAxis.TitleSet {
		title = cfg.YAxis.Title
	}
	xTitle := ctx.Table.XLabel
	if cfg.XAxis.TitleSet {
		xTitle = cfg.XAxis.Title
	}
	ctx.Panel = &chart.Panel{
		Box:           cfg.PlotBox(),
		X:             chart.NewLinear(xd, xr),
		Y:             chart.NewLinear(chart.Interval{Min: 0, Max: top}, yr),
		Value:         chart.Domain{Min: 0, Max: top},
		ValueVertical: true,
		XTitle:        xTitle,
		YTitle:        title,
	}
	return nil
}

// DrawShapes implements chart.Variant.
func (hg Histogram) DrawShapes(ctx *chart.Context) error {
	bins, err := hg.Bins(ctx.Table, ctx.Config.NBins)
	if err != nil || len(bins) == 0 {
		return err
	}
	part := chart.NewPartitioner(len(bins))
	part.Learn(bins[0].Min, bins[len(bins)-1].Max)

	p := ctx.Panel
	for k, b := range bins {
		lo, hi := p.MapXY(b.Min, 0), p.MapXY(b.Max, b.Weight)
		r := canonicRect(lo.X, lo.Y, hi.X, hi.Y)
		r.Class = "bin"
		r.Title = part.Label(k)
		r.Style = ctx.Style.Bar.Stroke
		r.Fill = ctx.Color(0)
		if _, err := ctx.Shape(r, readout(b.Weight, part.Label(k))); err != nil {
			return err
		}
	}
	return nil
}
