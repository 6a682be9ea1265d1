package geom

import (
	"sort"

	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
)

// SortableBar is a Bar whose rows can be ordered by their total over the
// visible series. A control in the upper right corner cycles through the
// orders default, ascending and descending.
type SortableBar struct {
	Bar
}

// SortRows implements chart.Sorter. The returned table is a sorted copy
// of t; t itself is never reordered. Rows with equal totals keep their
// original order.
func (SortableBar) SortRows(t *data.Table, legend *chart.LegendState, order chart.SortOrder) *data.Table {
	if order == chart.SortDefault {
		return t
	}
	sel := legend.Selected()
	total := func(r data.Row) float64 {
		sum := 0.0
		for _, j := range sel {
			sum += r.Values[j]
		}
		return sum
	}
	c := t.Clone()
	sort.SliceStable(c.Rows, func(a, b int) bool {
		if order == chart.SortAscending {
			return total(c.Rows[a]) < total(c.Rows[b])
		}
		return total(c.Rows[a]) > total(c.Rows[b])
	})
	return c
}

// Decorate draws the sort control.
func (SortableBar) Decorate(ctx *chart.Context) error {
	cfg := ctx.Config
	size := cfg.Legend.FontSize
	id, err := ctx.Surface.Append(ctx.Target.ID, &scene.Text{
		Attrs:    scene.Attrs{ID: ctx.Target.ID + "-sort", Class: "sort-control"},
		Style:    scene.Style{Fill: "black"},
		X:        cfg.Width - cfg.Margin.Right,
		Y:        cfg.Margin.Top + size/2,
		Text:     "Sort: " + ctx.Order.String(),
		Size:     size,
		Anchor:   scene.AnchorEnd,
		Baseline: scene.BaselineMiddle,
	})
	if err != nil {
		return err
	}
	return ctx.Surface.On(id, scene.Click, func(scene.Event) {
		if err := ctx.CycleSort(); err != nil {
			chart.Logger().Warn("sort control failed", "chart", ctx.Target.ID, "err", err)
		}
	})
}
