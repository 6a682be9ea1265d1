package chart

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var transformationTests = []struct {
	trans   Transformation
	domain  Interval
	pixels  Interval
	x, want float64
}{
	{LinearTrans, Interval{10, 20}, Interval{100, 200}, 12, 120},
	{LinearTrans, Interval{3, 5}, Interval{0, 1}, 4, 0.5},
	{LinearTrans, Interval{3, 5}, Interval{0, 1}, 6, 1.5},

	// Pixel ranges of vertical axes run backwards.
	{LinearTrans, Interval{0, 10}, Interval{350, 50}, 0, 350},
	{LinearTrans, Interval{0, 10}, Interval{350, 50}, 10, 50},
	{LinearTrans, Interval{-6.5, 11.5}, Interval{350, 50}, 0, 241.6667},
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(tc.trans.Name+"/"+strconv.Itoa(i), func(t *testing.T) {
			got := tc.trans.Forward(tc.domain, tc.pixels, tc.x)
			assert.InDelta(t, tc.want, got, 1e-4)
			if tc.domain.Contains(tc.x) {
				assert.InDelta(t, tc.x, tc.trans.Backward(tc.domain, tc.pixels, got), 1e-9)
			}
		})
	}
}
