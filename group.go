package chart

import (
	"fmt"
	"math"
)

// A Partitioner can be used to turn a continuous value into a discrete
// factor: Range is cut into Partitions intervals of equal width. The last
// interval includes Range.Max.
type Partitioner struct {
	Partitions int
	Range      Interval
}

// NewPartitioner returns a Partitioner with n partitions and an unset range.
func NewPartitioner(n int) *Partitioner {
	return &Partitioner{Partitions: n, Range: unsetInterval()}
}

// Learn extends the range of p to cover x.
func (p *Partitioner) Learn(x ...float64) { p.Range.Update(x...) }

// Width is the width of one partition.
func (p *Partitioner) Width() float64 {
	return (p.Range.Max - p.Range.Min) / float64(p.Partitions)
}

// Index returns the partition of x, -1 below and Partitions above the range.
func (p *Partitioner) Index(x float64) int {
	min, max := p.Range.Min, p.Range.Max
	switch {
	case x < min:
		return -1
	case x > max:
		return p.Partitions
	case x == max:
		return p.Partitions - 1
	}
	k := int(math.Floor((x - min) / p.Width()))
	if k >= p.Partitions {
		k = p.Partitions - 1
	}
	return k
}

// Bounds returns the interval of partition k.
func (p *Partitioner) Bounds(k int) (lo, hi float64) {
	w := p.Width()
	lo = p.Range.Min + float64(k)*w
	hi = p.Range.Min + float64(k+1)*w
	if k == p.Partitions-1 {
		hi = p.Range.Max
	}
	return lo, hi
}

// Label names partition k in interval notation.
func (p *Partitioner) Label(k int) string {
	switch {
	case k < 0:
		return fmt.Sprintf("(-∞, %g)", p.Range.Min)
	case k >= p.Partitions:
		return fmt.Sprintf("(%g, ∞)", p.Range.Max)
	}
	lo, hi := p.Bounds(k)
	if k == p.Partitions-1 {
		return fmt.Sprintf("[%g, %g]", lo, hi)
	}
	return fmt.Sprintf("[%g, %g)", lo, hi)
}

// Partition returns the label of the partition x falls into.
func (p *Partitioner) Partition(x float64) string {
	return p.Label(p.Index(x))
}
