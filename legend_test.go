package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegendState(t *testing.T) {
	l := NewLegendState(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{0, 1, 2}, l.Selected())

	assert.True(t, l.Toggle(1))
	assert.False(t, l.Visible(1))
	assert.Equal(t, []int{0, 2}, l.Selected())
	assert.False(t, l.Toggle(3))
	assert.False(t, l.Toggle(-1))

	// Nothing visible falls back to all series.
	l.Toggle(0)
	l.Toggle(2)
	assert.Equal(t, []int{0, 1, 2}, l.Selected())

	c := l.Clone()
	c.Toggle(0)
	assert.False(t, l.Visible(0))
	assert.True(t, c.Visible(0))
}

func TestLegendResize(t *testing.T) {
	l := NewLegendState(2)
	l.Toggle(0)
	l.Resize(4)
	assert.Equal(t, []int{1, 2, 3}, l.Selected())
	l.Resize(1)
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Visible(0))
	assert.False(t, l.Visible(3))
}

func TestLayoutLegend(t *testing.T) {
	measure := func(s string) float64 { return 10 * float64(len(s)) }
	geo := LegendGeometry{X: 0, Y: 5, Width: 100, ChartWidth: 600, FontSize: 9}
	// Items are 9 + 3 + 10*len wide, separated by 9.
	items := LayoutLegend([]string{"aaaa", "bbbb", "cc", "dddddddddddddddddd"}, measure, geo)

	assert.Equal(t, 0, items[0].Row)
	assert.Equal(t, 0.0, items[0].X)
	assert.Equal(t, 52.0, items[0].W)

	// 61 + 52 passes the budget of 100.
	assert.Equal(t, 1, items[1].Row)
	assert.Equal(t, 0.0, items[1].X)
	assert.Equal(t, 18.5, items[1].Y)

	assert.Equal(t, 1, items[2].Row)
	assert.Equal(t, 61.0, items[2].X)

	// An item wider than the budget gets a row of its own.
	assert.Equal(t, 2, items[3].Row)
	assert.Equal(t, 0.0, items[3].X)
}

func TestLayoutLegendChartEdge(t *testing.T) {
	measure := func(s string) float64 { return 40 }
	geo := LegendGeometry{X: 100, ChartWidth: 250, FontSize: 10}
	items := LayoutLegend([]string{"a", "b", "c"}, measure, geo)
	rows := []int{items[0].Row, items[1].Row, items[2].Row}
	assert.Equal(t, []int{0, 0, 1}, rows)
	for _, it := range items {
		assert.LessOrEqual(t, it.X+it.W, 250.0)
	}
}
