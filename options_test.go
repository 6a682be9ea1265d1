package chart

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	c, err := Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, "body", c.Location)
	assert.Equal(t, 600.0, c.Width)
	assert.Equal(t, 400.0, c.Height)
	assert.Equal(t, Insets{10, 10, 10, 10}, c.Margin)
	assert.Equal(t, Insets{50, 50, 50, 50}, c.Frame)
	assert.Equal(t, [4]string{"black", "black", "black", "black"}, c.AxisColor)
	assert.Equal(t, [4]float64{1, 1, 1, 1}, c.AxisStrokeWidth)
	assert.Equal(t, 6.0, c.XAxis.TickSize)
	assert.Equal(t, 11.0, c.YAxis.TickFontSize)
	assert.Equal(t, 13.0, c.XAxis.TitleFontSize)
	assert.False(t, c.XAxis.Grid)
	assert.Equal(t, []Side{Bottom}, c.XAxis.Position)
	assert.Equal(t, []Side{Left}, c.YAxis.Position)
	assert.False(t, c.XAxis.PositionSet)
	assert.Equal(t, 0.1, c.YAxis.Padding)
	assert.Equal(t, Category10, c.Colors)
	assert.Equal(t, 10, c.NBins)
	assert.True(t, c.LegendOn)
	assert.Equal(t, SortDefault, c.SortOrder)
	assert.Empty(t, c.Warnings)
	assert.Equal(t, c, DefaultConfig())
}

var familyTests = []struct {
	raw    Options
	margin Insets
	frame  Insets
}{
	{Options{"margin": 5}, Insets{5, 5, 5, 5}, Insets{50, 50, 50, 50}},
	{Options{"marginTop": 7}, Insets{7, 0, 0, 0}, Insets{50, 50, 50, 50}},
	{Options{"frameLeft": "70"}, Insets{10, 10, 10, 10}, Insets{30, 30, 30, 70}},
	{Options{"frame": 20, "frameLeft": 99}, Insets{10, 10, 10, 10}, Insets{20, 20, 20, 20}},
	{Options{"marginRight": 1, "marginBottom": 2}, Insets{0, 1, 2, 0}, Insets{50, 50, 50, 50}},
}

func TestResolveFamilies(t *testing.T) {
	for i, tc := range familyTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c, err := Resolve(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.margin, c.Margin)
			assert.Equal(t, tc.frame, c.Frame)
			assert.Empty(t, c.Warnings)
		})
	}
}

func TestResolveAxisFamilies(t *testing.T) {
	c, err := Resolve(Options{"yTickSize": 2, "grid": true, "axisColorLeft": "red"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, c.XAxis.TickSize)
	assert.Equal(t, 2.0, c.YAxis.TickSize)
	assert.True(t, c.XAxis.Grid)
	assert.True(t, c.YAxis.Grid)
	assert.Equal(t, [4]string{"black", "black", "black", "red"}, c.AxisColor)
}

func TestResolveDoesNotModifyInput(t *testing.T) {
	raw := Options{"colors": []any{"red", "blue"}, "margin": "3"}
	_, err := Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, Options{"colors": []any{"red", "blue"}, "margin": "3"}, raw)
}

func TestResolveNamedPalette(t *testing.T) {
	c, err := Resolve(Options{"colors": "tableau10"})
	require.NoError(t, err)
	assert.Equal(t, Tableau10, c.Colors)
	assert.Equal(t, "#4e79a7", colorAt(c.Colors, 10))

	c.Colors[0] = "red"
	assert.Equal(t, "#4e79a7", Tableau10[0])

	c, err = Resolve(Options{"colors": "category10"})
	require.NoError(t, err)
	assert.Equal(t, Category10, c.Colors)
}

func TestResolveClampsFractions(t *testing.T) {
	c, err := Resolve(Options{"titleX": 1.2, "legendY": -0.5, "xPadding": 0.3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Title.X)
	assert.Equal(t, 0.0, c.Legend.Y)
	assert.Equal(t, 0.3, c.XAxis.Padding)
	assert.Len(t, c.Warnings, 2)
}

func TestResolveUnknownKeyWarns(t *testing.T) {
	c, err := Resolve(Options{"colour": "red", "bogus": 1})
	require.NoError(t, err)
	require.Len(t, c.Warnings, 2)
	assert.Contains(t, c.Warnings[0], "bogus")
	assert.Contains(t, c.Warnings[1], "colour")
}

var resolveErrorTests = []struct {
	raw Options
	key string
}{
	{Options{"width": "wide"}, "width"},
	{Options{"width": -3}, "width"},
	{Options{"margin": -1}, "margin"},
	{Options{"colors": "red"}, "colors"},
	{Options{"colors": []any{}}, "colors"},
	{Options{"colors": []any{"red", 3}}, "colors"},
	{Options{"xTickRotate": 91}, "xTickRotate"},
	{Options{"yTickRotate": "-120"}, "yTickRotate"},
	{Options{"stacked": "yes please"}, "stacked"},
	{Options{"xAxisPosition": []any{"left"}}, "xAxisPosition"},
	{Options{"yAxisPosition": []any{"left", "right", "left"}}, "yAxisPosition"},
	{Options{"xAxisPosition": "bottom"}, "xAxisPosition"},
	{Options{"nBins": 0}, "nBins"},
	{Options{"xTicks": 2.5}, "xTicks"},
	{Options{"sortOrder": "random"}, "sortOrder"},
	{Options{"tickLabelHide": []any{"middle 1"}}, "tickLabelHide"},
	{Options{"tickLabelHide": []any{"bottom 3-1"}}, "tickLabelHide"},
	{Options{"tickLabelHide": []any{"bottom"}}, "tickLabelHide"},
	{Options{"axisLongLineRemove": []any{"inside"}}, "axisLongLineRemove"},
	{Options{"width": 100, "margin": 30}, "width"},
}

func TestResolveErrors(t *testing.T) {
	for i, tc := range resolveErrorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c, err := Resolve(tc.raw)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrConfiguration))
			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.key, ce.Key)
		})
	}
}

func TestResolveLists(t *testing.T) {
	c, err := Resolve(Options{
		"xAxisPosition":      []any{"top", "bottom"},
		"yTitlePosition":     []string{"right"},
		"gridDash":           []any{4, "2"},
		"axisLongLineRemove": []any{"left", "top"},
		"tickLabelHide":      []any{"bottom 0-2 5", "left '1,3'"},
		"xTicks":             5,
		"xTitle":             "Quarter",
	})
	require.NoError(t, err)
	assert.Equal(t, []Side{Top, Bottom}, c.XAxis.Position)
	assert.True(t, c.XAxis.PositionSet)
	assert.Equal(t, []Side{Right}, c.YAxis.TitlePosition)
	assert.Equal(t, []float64{4, 2}, c.GridDash)
	assert.Equal(t, [4]bool{true, false, false, true}, c.AxisLineRemove)
	assert.Equal(t, []IndexRange{{0, 2}, {5, 5}}, c.TickLabelHide[Bottom])
	assert.Equal(t, []IndexRange{{1, 1}, {3, 3}}, c.TickLabelHide[Left])
	assert.True(t, c.HiddenLabel(Bottom, 1))
	assert.False(t, c.HiddenLabel(Bottom, 3))
	assert.True(t, c.HiddenLabel(Left, 3))
	assert.Equal(t, 5, c.XAxis.Ticks)
	assert.Equal(t, "Quarter", c.XAxis.Title)
	assert.True(t, c.XAxis.TitleSet)
}

func TestMergeKeepsPrevious(t *testing.T) {
	c, err := Resolve(Options{"marginTop": 4, "title": "Revenue", "stacked": true, "gridDash": []any{1, 1}})
	require.NoError(t, err)

	m, err := c.Merge(Options{"marginLeft": 9, "width": 800})
	require.NoError(t, err)
	assert.Equal(t, Insets{4, 0, 0, 9}, m.Margin)
	assert.Equal(t, "Revenue", m.Title.Text)
	assert.True(t, m.Stacked)
	assert.Equal(t, 800.0, m.Width)

	// The original is untouched and shares no slices with the merge.
	assert.Equal(t, Insets{4, 0, 0, 0}, c.Margin)
	assert.Equal(t, 600.0, c.Width)
	m.GridDash[0] = 7
	assert.Equal(t, 1.0, c.GridDash[0])
}

func TestMergeFailureKeepsNothing(t *testing.T) {
	c := DefaultConfig()
	m, err := c.Merge(Options{"xTickRotate": 100})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Equal(t, 0.0, c.XAxis.TickRotate)
}

func TestPlotBox(t *testing.T) {
	c, err := Resolve(Options{"width": 300, "height": 200, "margin": 0, "frame": 20})
	require.NoError(t, err)
	b := c.PlotBox()
	assert.Equal(t, 20.0, b.X0)
	assert.Equal(t, 280.0, b.X1)
	assert.Equal(t, 160.0, b.H())
}

func TestSortOrderCycle(t *testing.T) {
	o := SortDefault
	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, o.String())
		o = o.Next()
	}
	assert.Equal(t, []string{"default", "ascending", "descending", "default"}, seen)
}
