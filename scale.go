package chart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Scale

// A Scale maps data to one pixel axis of the plot area and knows how to
// label that axis.
type Scale interface {
	// Pixels is the pixel range the scale maps onto.
	Pixels() Interval

	// AxisTicks returns the ticks to draw along the axis. For numeric
	// scales count selects the number of ticks, 0 means automatic.
	AxisTicks(count int) []AxisTick
}

// AxisTick is a tick at pixel position Pos.
type AxisTick struct {
	Pos   float64
	Label string
}

// ----------------------------------------------------------------------------
// Linear

// Linear maps the numeric Domain onto the pixel Range. Range.Min may be
// larger than Range.Max, e.g. for vertical axes where values grow upwards.
type Linear struct {
	Domain Interval
	Range  Interval
	Trans  Transformation
}

// NewLinear returns a linear scale from domain to rng.
func NewLinear(domain, rng Interval) *Linear {
	return &Linear{Domain: domain, Range: rng, Trans: LinearTrans}
}

// Map maps the data value x to a pixel. If the domain of s is degenerate
// or unset Map returns the center of the pixel range.
func (s *Linear) Map(x float64) float64 {
	if !s.Domain.Valid() || s.Domain.Min == s.Domain.Max {
		return (s.Range.Min + s.Range.Max) / 2
	}
	return s.Trans.Forward(s.Domain, s.Range, x)
}

// Invert maps the pixel p back to a data value.
func (s *Linear) Invert(p float64) float64 {
	return s.Trans.Backward(s.Domain, s.Range, p)
}

func (s *Linear) Pixels() Interval { return s.Range }

// AxisTicks implements Scale.
func (s *Linear) AxisTicks(count int) []AxisTick {
	var ticks []AxisTick
	for _, t := range Ticks(s.Domain, count) {
		ticks = append(ticks, AxisTick{Pos: s.Map(t.Value), Label: t.Label})
	}
	return ticks
}

// InRange reports whether x lies in the domain of s.
func (s *Linear) InRange(x float64) bool {
	return x >= s.Domain.Min && x <= s.Domain.Max
}

func (s *Linear) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Domain=[%.2f:%.2f] Range=[%.2f:%.2f] %s",
		s.Domain.Min, s.Domain.Max, s.Range.Min, s.Range.Max, s.Trans.Name)
}

// ----------------------------------------------------------------------------
// Band

// Band divides a pixel range into one band per key with a padding
// fraction between the bands and at both ends. The first key gets the
// band closest to Range.Min.
type Band struct {
	Keys    []string
	Range   Interval
	Padding float64

	index map[string]int
}

// NewBand returns a band scale over keys. Duplicate keys share a band.
func NewBand(keys []string, rng Interval, padding float64) *Band {
	b := &Band{Range: rng, Padding: padding, index: make(map[string]int, len(keys))}
	for _, k := range keys {
		if _, ok := b.index[k]; ok {
			continue
		}
		b.index[k] = len(b.Keys)
		b.Keys = append(b.Keys, k)
	}
	return b
}

// Step is the distance between the starts of two adjacent bands.
func (b *Band) Step() float64 {
	n := float64(len(b.Keys))
	if n == 0 {
		return 0
	}
	return b.Range.Span() / (n + b.Padding)
}

// Bandwidth is the width of a single band.
func (b *Band) Bandwidth() float64 {
	return b.Step() * (1 - b.Padding)
}

// At returns the start of band i.
func (b *Band) At(i int) float64 {
	n := float64(len(b.Keys))
	step := b.Step()
	start := b.Range.Min + (b.Range.Span()-step*(n-b.Padding))/2
	return start + float64(i)*step
}

// Pos returns the start of the band of key.
func (b *Band) Pos(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return math.NaN(), false
	}
	return b.At(i), true
}

// Index returns the band number of key.
func (b *Band) Index(key string) (int, bool) {
	i, ok := b.index[key]
	return i, ok
}

func (b *Band) Pixels() Interval { return b.Range }

// AxisTicks implements Scale: one tick per key at the band center.
func (b *Band) AxisTicks(int) []AxisTick {
	ticks := make([]AxisTick, len(b.Keys))
	bw := b.Bandwidth()
	for i, k := range b.Keys {
		ticks[i] = AxisTick{Pos: b.At(i) + bw/2, Label: k}
	}
	return ticks
}

// ----------------------------------------------------------------------------
// PointScale

// PointScale places one point per key, evenly spaced, with Padding steps
// of room before the first and after the last point.
type PointScale struct {
	Keys    []string
	Range   Interval
	Padding float64

	index map[string]int
}

// NewPointScale returns a point scale over keys.
func NewPointScale(keys []string, rng Interval, padding float64) *PointScale {
	b := NewBand(keys, rng, padding)
	return &PointScale{Keys: b.Keys, Range: rng, Padding: padding, index: b.index}
}

// Step is the distance between two adjacent points.
func (p *PointScale) Step() float64 {
	n := float64(len(p.Keys))
	return p.Range.Span() / math.Max(1, n-1+2*p.Padding)
}

// At returns the position of point i.
func (p *PointScale) At(i int) float64 {
	n := float64(len(p.Keys))
	step := p.Step()
	start := p.Range.Min + (p.Range.Span()-step*(n-1))/2
	return start + float64(i)*step
}

// Pos returns the position of key.
func (p *PointScale) Pos(key string) (float64, bool) {
	i, ok := p.index[key]
	if !ok {
		return math.NaN(), false
	}
	return p.At(i), true
}

func (p *PointScale) Pixels() Interval { return p.Range }

// AxisTicks implements Scale: one tick per key.
func (p *PointScale) AxisTicks(int) []AxisTick {
	ticks := make([]AxisTick, len(p.Keys))
	for i, k := range p.Keys {
		ticks[i] = AxisTick{Pos: p.At(i), Label: k}
	}
	return ticks
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Span is the signed length Max-Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Contains reports whether x lies in i, independent of the orientation of i.
func (i Interval) Contains(x float64) bool {
	return x >= math.Min(i.Min, i.Max) && x <= math.Max(i.Min, i.Max)
}

// Clamp returns x limited to i.
func (i Interval) Clamp(x float64) float64 {
	return math.Max(math.Min(i.Min, i.Max), math.Min(math.Max(i.Min, i.Max), x))
}
