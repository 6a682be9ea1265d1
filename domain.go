package chart

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/vdobler/chart/data"
)

// Domain is the value range of a bar chart together with the baseline
// bars are measured from.
type Domain struct {
	Min, Max float64
	Baseline float64
}

// Interval returns [d.Min, d.Max].
func (d Domain) Interval() Interval { return Interval{d.Min, d.Max} }

// SpansZero reports whether the domain has room on both sides of 0.
func (d Domain) SpansZero() bool { return d.Min < 0 && d.Max > 0 }

// BarDomain computes the padded value domain and the baseline of a bar
// chart over the series selected by legend.
func BarDomain(t *data.Table, legend *LegendState, cfg *Config) Domain {
	sel := legend.Selected()
	pad := cfg.YAxis.Padding
	if cfg.Horizontal {
		pad = cfg.XAxis.Padding
	}

	var dataMin, dataMax float64
	if cfg.Stacked {
		dataMin, dataMax = stackBounds(t, sel)
	} else {
		dataMin, dataMax = seriesBounds(t, sel)
	}
	if math.IsNaN(dataMin) {
		// No rows.
		return Domain{Min: 0, Max: 1}
	}

	d := Domain{Baseline: baseline(dataMin, dataMax, cfg.ScaleStart)}
	span := math.Max(dataMax, d.Baseline) - math.Min(dataMin, d.Baseline)
	if span == 0 {
		span = math.Abs(dataMax)
		if span == 0 {
			span = 1
		}
	}
	if dataMax > 0 {
		d.Max = dataMax + span*pad
	} else {
		d.Max = math.Min(d.Baseline, 0)
	}
	if dataMin < 0 {
		d.Min = dataMin - span*pad
	} else {
		d.Min = math.Max(d.Baseline, 0)
	}
	if d.Min == d.Max {
		d.Max = d.Min + 1
	}
	return d
}

// baseline applies the scaleStart rule: an offset baseline is only used
// if all values share one sign and start lies between 0 and the values.
func baseline(dataMin, dataMax, start float64) float64 {
	switch {
	case dataMin > 0 && start > 0 && start <= dataMin:
		return start
	case dataMax < 0 && start < 0 && start >= dataMax:
		return start
	}
	return 0
}

// seriesBounds returns the extremes of the selected series.
func seriesBounds(t *data.Table, sel []int) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, j := range sel {
		col := t.Column(j)
		if len(col) == 0 {
			continue
		}
		min, max := stats.Bounds(col)
		if !(lo <= min) {
			lo = min
		}
		if !(hi >= max) {
			hi = max
		}
	}
	return lo, hi
}

// stackBounds returns the extremes of the stacked rows: per row the sum of
// the negative and of the positive selected values. A row without negative
// values contributes its positive sum to the minimum and vice versa.
func stackBounds(t *data.Table, sel []int) (lo, hi float64) {
	if len(t.Rows) == 0 {
		return math.NaN(), math.NaN()
	}
	s := NewStack(len(t.Rows), 0)
	rowMin := make([]float64, len(t.Rows))
	rowMax := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		hasPos, hasNeg := false, false
		for _, j := range sel {
			v := r.Values[j]
			s.Push(i, v)
			hasPos = hasPos || v > 0
			hasNeg = hasNeg || v < 0
		}
		pos, neg := s.Totals(i)
		rowMin[i], rowMax[i] = neg, pos
		if !hasNeg {
			rowMin[i] = pos
		}
		if !hasPos {
			rowMax[i] = neg
		}
	}
	lo, _ = stats.Bounds(rowMin)
	_, hi = stats.Bounds(rowMax)
	return lo, hi
}

// LinearDomain returns the range of values padded on both sides by
// pad times its span. A zero span is treated as 1.
func LinearDomain(values []float64, pad float64) Interval {
	i := unsetInterval()
	i.Update(values...)
	if !i.Valid() {
		return Interval{0, 1}
	}
	span := i.Span()
	if span == 0 {
		span = 1
	}
	i.Min -= span * pad
	i.Max += span * pad
	return i
}

// ----------------------------------------------------------------------------
// Stack

// Stack keeps the running positive and negative totals of each row of a
// stacked bar chart. Totals start at 0; segments are cut off at the
// baseline, so the top of a stack is its sum whatever the baseline.
type Stack struct {
	base     float64
	pos, neg []float64
}

// NewStack returns a stack for the given number of rows whose segments
// are drawn from base.
func NewStack(rows int, base float64) *Stack {
	return &Stack{base: base, pos: make([]float64, rows), neg: make([]float64, rows)}
}

// Reset sets all running totals back to 0.
func (s *Stack) Reset() {
	for i := range s.pos {
		s.pos[i], s.neg[i] = 0, 0
	}
}

// Push stacks v onto row and returns the extent of its segment.
// Positive values grow the positive total, negative values the negative
// one; zero yields an empty segment at the positive total. The part of a
// segment between 0 and the baseline is not drawn.
func (s *Stack) Push(row int, v float64) (from, to float64) {
	if v < 0 {
		from = s.neg[row]
		s.neg[row] += v
		return math.Min(from, s.base), math.Min(s.neg[row], s.base)
	}
	from = s.pos[row]
	s.pos[row] += v
	return math.Max(from, s.base), math.Max(s.pos[row], s.base)
}

// Totals returns the running totals of row.
func (s *Stack) Totals(row int) (pos, neg float64) {
	return s.pos[row], s.neg[row]
}
