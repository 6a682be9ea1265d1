package chart_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/geom"
	"github.com/vdobler/chart/scene"
)

var revenue = data.Dataset{
	{"Quarter", "2019", "2020"},
	{"1st", 10, 12},
	{"2nd", -5, 3},
	{"3rd", 0, 7},
}

func serials(s *scene.Scene, id string) map[int]bool {
	m := make(map[int]bool)
	for _, e := range s.Descendants(id) {
		m[e.Serial] = true
	}
	return m
}

func TestNewMountsChart(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.ID(), "chart-"))
	assert.Equal(t, chart.Target{Location: scene.RootID, ID: c.ID()}, c.Target())
	assert.Equal(t, chart.Rendered, c.State())
	e, ok := s.Lookup(c.ID())
	require.True(t, ok)
	assert.Equal(t, scene.RootID, e.Parent.ID)
	assert.Len(t, s.Select(c.ID(), "bar"), 6)
	assert.True(t, s.Has(c.ID()+"-legend"))

	c2, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)
	assert.NotEqual(t, c.ID(), c2.ID())
}

func TestNewErrorsMountNothing(t *testing.T) {
	s := scene.New(600, 400)
	_, err := chart.New(s, geom.Bar{}, revenue, chart.Options{"id": "revenue"})
	require.NoError(t, err)
	before := serials(s, scene.RootID)

	for _, tc := range []struct {
		ds   data.Dataset
		opts chart.Options
		key  string
	}{
		{revenue, chart.Options{"id": "revenue"}, "id"},
		{revenue, chart.Options{"location": "nowhere"}, "location"},
		{revenue, chart.Options{"width": "wide"}, "width"},
		{revenue, chart.Options{"xAxisPosition": []string{"left"}}, "xAxisPosition"},
	} {
		_, err := chart.New(s, geom.Bar{}, tc.ds, tc.opts)
		var ce *chart.ConfigError
		require.True(t, errors.As(err, &ce), "%v", err)
		assert.Equal(t, tc.key, ce.Key)
		assert.ErrorIs(t, err, chart.ErrConfiguration)
	}

	_, err = chart.New(s, geom.Bar{}, data.Dataset{{"Q"}, {"a"}}, nil)
	assert.ErrorIs(t, err, data.ErrFormat)
	_, err = chart.New(s, geom.Bar{}, data.Dataset{{"Q", "A"}, {"a", "x"}}, nil)
	assert.ErrorIs(t, err, data.ErrFormat)

	assert.Equal(t, before, serials(s, scene.RootID))
}

func TestNewInsideLocation(t *testing.T) {
	s := scene.New(600, 400)
	_, err := s.Append(scene.RootID, &scene.Group{Attrs: scene.Attrs{ID: "panel"}})
	require.NoError(t, err)
	c, err := chart.New(s, geom.LineDot{}, revenue, chart.Options{"location": "panel", "id": "trend"})
	require.NoError(t, err)
	assert.Equal(t, "trend", c.ID())
	e, _ := s.Lookup("trend")
	assert.Equal(t, "panel", e.Parent.ID)
}

func TestUpdateReplacesEverything(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)
	old := serials(s, c.ID())
	require.NotEmpty(t, old)

	require.NoError(t, c.Update(nil, chart.Options{"title": "Revenue"}))
	now := serials(s, c.ID())
	assert.Len(t, now, len(old)+1)
	for serial := range old {
		assert.False(t, now[serial], "element %d survived the update", serial)
	}
	assert.Len(t, s.Select(c.ID(), "title"), 1)
	assert.Equal(t, "Revenue", c.Config().Title.Text)

	// Earlier options are kept.
	require.NoError(t, c.Update(data.Dataset{{"Q", "A"}, {"x", 1}}, chart.Options{"stacked": true}))
	assert.Equal(t, "Revenue", c.Config().Title.Text)
	assert.True(t, c.Config().Stacked)
	assert.Len(t, s.Select(c.ID(), "bar"), 1)
	assert.Equal(t, 1, c.Legend().Len())
	assert.Equal(t, chart.Rendered, c.State())

	// A chart cannot move.
	require.NoError(t, c.Update(nil, chart.Options{"id": "other", "location": "nowhere"}))
	assert.True(t, s.Has(c.ID()))
	assert.False(t, s.Has("other"))
}

func TestInvalidUpdateKeepsChart(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, chart.Options{"title": "Revenue"})
	require.NoError(t, err)
	before := serials(s, c.ID())

	err = c.Update(nil, chart.Options{"width": -1})
	assert.ErrorIs(t, err, chart.ErrConfiguration)
	err = c.Update(data.Dataset{{"Q", "A"}, {"x"}}, nil)
	assert.ErrorIs(t, err, data.ErrFormat)

	assert.Equal(t, before, serials(s, c.ID()))
	assert.Equal(t, "Revenue", c.Config().Title.Text)
	assert.Equal(t, 600.0, c.Config().Width)
}

func TestLegendToggle(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)

	item := c.ID() + "-legend-1"
	require.True(t, s.Dispatch(item, scene.Click, 0, 0))
	assert.False(t, c.Legend().Visible(1))
	assert.Len(t, s.Select(c.ID(), "bar"), 3)

	// The item is drawn faded and still toggles back.
	faded := s.Descendants(item)
	require.NotEmpty(t, faded)
	assert.Equal(t, 0.3, faded[0].Node.(*scene.Rect).Opacity)

	require.True(t, s.Dispatch(item, scene.Click, 0, 0))
	assert.True(t, c.Legend().Visible(1))
	assert.Len(t, s.Select(c.ID(), "bar"), 6)

	assert.Error(t, c.Toggle(5))
}

func TestSingleSeriesHasNoLegend(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, data.Dataset{{"Q", "Rev"}, {"a", 1}}, nil)
	require.NoError(t, err)
	assert.False(t, s.Has(c.ID()+"-legend"))

	c, err = chart.New(s, geom.Bar{}, revenue, chart.Options{"legendOn": false})
	require.NoError(t, err)
	assert.False(t, s.Has(c.ID()+"-legend"))
}

func TestSortNeedsSortableVariant(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)
	assert.Error(t, c.Sort(chart.SortAscending))
	assert.Equal(t, chart.SortDefault, c.Order())
}

func TestTooltip(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)
	tip := c.ID() + "-tooltip"

	bars := s.Select(c.ID(), "bar")
	require.NotEmpty(t, bars)
	require.True(t, s.Dispatch(bars[0].ID, scene.PointerOver, 0, 0))
	require.True(t, s.Has(tip))

	var texts []string
	box := c.Config().PlotBox()
	for _, e := range s.Descendants(tip) {
		switch n := e.Node.(type) {
		case *scene.Text:
			texts = append(texts, n.Text)
		case *scene.Rect:
			assert.GreaterOrEqual(t, n.X, box.X0)
			assert.LessOrEqual(t, n.X+n.W, box.X1)
			assert.GreaterOrEqual(t, n.Y, box.Y0)
		}
	}
	assert.Equal(t, []string{"1st 2019: 10"}, texts)

	// Only one annotation at a time.
	require.True(t, s.Dispatch(bars[1].ID, scene.PointerOver, 0, 0))
	assert.Len(t, s.Select(c.ID(), "tooltip"), 1)

	require.True(t, s.Dispatch(bars[1].ID, scene.PointerOut, 0, 0))
	assert.False(t, s.Has(tip))

	c, err = chart.New(s, geom.Bar{}, revenue, chart.Options{"tooltip": false})
	require.NoError(t, err)
	bars = s.Select(c.ID(), "bar")
	assert.False(t, s.Dispatch(bars[0].ID, scene.PointerOver, 0, 0))
}

func TestConcurrentRedraws(t *testing.T) {
	s := scene.New(600, 400)
	c, err := chart.New(s, geom.Bar{}, revenue, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.Toggle(0)
			} else {
				c.Redraw()
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, c.Redraw())

	// Exactly one rendition is mounted.
	assert.Len(t, s.Select(scene.RootID, "chart"), 1)
	assert.Len(t, s.Select(c.ID(), "bar"), 6)
	assert.Len(t, s.Select(c.ID(), "legend"), 1)
	assert.Equal(t, chart.Rendered, c.State())
}
