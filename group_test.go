package chart

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var partitionTests = []struct {
	x    float64
	want string
}{
	{0.5, "(-∞, 1)"},
	{1, "[1, 2)"},
	{1.99, "[1, 2)"},
	{2, "[2, 3]"},
	{3, "[2, 3]"},
	{3.5, "(3, ∞)"},
}

func TestPartitioner(t *testing.T) {
	p := NewPartitioner(2)
	p.Learn(2, 1, 3, 2)
	assert.Equal(t, Interval{1, 3}, p.Range)
	for i, tc := range partitionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tc.want, p.Partition(tc.x))
		})
	}
}

func TestPartitionerBoundsAreContiguous(t *testing.T) {
	p := &Partitioner{Partitions: 7, Range: Interval{-3, 11}}
	_, prev := p.Bounds(0)
	for k := 1; k < 7; k++ {
		lo, hi := p.Bounds(k)
		assert.Equal(t, prev, lo)
		prev = hi
	}
	assert.Equal(t, 11.0, prev)
}
