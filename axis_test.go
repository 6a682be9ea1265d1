package chart

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/chart/scene"
)

var placementTests = []struct {
	axis AxisConfig
	flip bool
	want []Side
}{
	{AxisConfig{Position: []Side{Bottom}}, false, []Side{Bottom}},
	{AxisConfig{Position: []Side{Bottom}}, true, []Side{Top}},
	{AxisConfig{Position: []Side{Left}}, true, []Side{Right}},
	{AxisConfig{Position: []Side{Bottom}, PositionSet: true}, true, []Side{Bottom}},
	{AxisConfig{Position: []Side{Top, Bottom}}, true, []Side{Bottom, Top}},
	{AxisConfig{}, true, []Side{}},
}

func TestPlacement(t *testing.T) {
	for i, tc := range placementTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tc.want, Placement(&tc.axis, tc.flip))
		})
	}
}

func testAxis(s *scene.Scene, sides []Side) AxisSpec {
	cfg := DefaultConfig()
	st := DefaultStyle(cfg)
	box := cfg.PlotBox()
	return AxisSpec{
		ID:     "x-axis",
		Scale:  NewBand([]string{"A", "B", "C"}, Interval{box.X0, box.X1}, 0.1),
		Box:    box,
		Frame:  cfg.Frame,
		Sides:  sides,
		Style:  &st,
		Title:  "Quarter",
		Hidden: func(s Side, i int) bool { return s == Bottom && i == 1 },
	}
}

func TestDrawAxisHiddenLabels(t *testing.T) {
	s := scene.New(600, 400)
	spec := testAxis(s, []Side{Bottom})
	spec.TitleSides = []Side{Bottom}
	require.NoError(t, DrawAxis(s, scene.RootID, spec))

	ticks := s.Select(spec.ID, "tick")
	require.Len(t, ticks, 3)
	full := spec.Style.Axis[Bottom].Tick.StrokeWidth
	assert.Equal(t, full, ticks[0].Node.(*scene.Line).StrokeWidth)
	assert.Equal(t, full/2, ticks[1].Node.(*scene.Line).StrokeWidth)

	var labels []string
	for _, e := range s.Select(spec.ID, "tick-label") {
		labels = append(labels, e.Node.(*scene.Text).Text)
	}
	assert.Equal(t, []string{"A", "C"}, labels)
	assert.Len(t, s.Select(spec.ID, "axis-line"), 1)
	assert.Len(t, s.Select(spec.ID, "axis-title"), 1)
}

func TestDrawAxisBothSides(t *testing.T) {
	s := scene.New(600, 400)
	spec := testAxis(s, []Side{Top, Bottom})
	spec.LineRemove[Top] = true
	require.NoError(t, DrawAxis(s, scene.RootID, spec))

	// Label 1 is only hidden at the bottom.
	assert.Len(t, s.Select(spec.ID, "tick"), 6)
	assert.Len(t, s.Select(spec.ID, "tick-label"), 5)
	lines := s.Select(spec.ID, "axis-line")
	require.Len(t, lines, 1)
	assert.Equal(t, spec.Box.Y1, lines[0].Node.(*scene.Line).Y1)
	assert.Equal(t, [4]bool{Bottom: true}, spec.Lines())
	// No title sides, no title.
	assert.Empty(t, s.Select(spec.ID, "axis-title"))
}

func TestTickLabelPlacement(t *testing.T) {
	b := scene.Box{X0: 100, Y0: 50, X1: 500, Y1: 350}
	st := &AxisStyle{}
	st.Tick.Length = 6
	st.Tick.Label.Size = 10

	txt := tickLabel(Bottom, b, 200, st, 4)
	assert.Equal(t, scene.AnchorMiddle, txt.Anchor)
	assert.Equal(t, 200.0, txt.X)
	assert.Equal(t, 350.0+15, txt.Y)

	txt = tickLabel(Left, b, 120, st, 4)
	assert.Equal(t, scene.AnchorEnd, txt.Anchor)
	assert.Equal(t, 90.0, txt.X)

	st.Tick.Rotate = 90
	txt = tickLabel(Bottom, b, 200, st, 4)
	assert.Equal(t, scene.AnchorStart, txt.Anchor)
	assert.Equal(t, 360.0, txt.Y)

	st.Tick.Rotate = -45
	txt = tickLabel(Top, b, 200, st, 4)
	assert.Equal(t, scene.AnchorStart, txt.Anchor)
	assert.Equal(t, -45.0, txt.Rotate)
}

var sideLabelTests = []struct {
	side   Side
	rotate float64
	anchor string
	x      float64
}{
	{Left, 45, scene.AnchorEnd, 87.5},
	{Left, -45, scene.AnchorEnd, 87.5},
	{Right, 45, scene.AnchorStart, 512.5},
	{Right, -45, scene.AnchorStart, 512.5},
	{Right, 0, scene.AnchorStart, 510},
}

func TestSideTickLabelStaysOutside(t *testing.T) {
	b := scene.Box{X0: 100, Y0: 50, X1: 500, Y1: 350}
	for i, tc := range sideLabelTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			st := &AxisStyle{}
			st.Tick.Length = 6
			st.Tick.Label.Size = 10
			st.Tick.Rotate = tc.rotate
			txt := tickLabel(tc.side, b, 120, st, 4)
			assert.Equal(t, tc.anchor, txt.Anchor)
			assert.InDelta(t, tc.x, txt.X, 1e-9)
			assert.Equal(t, 120.0, txt.Y)
			assert.Equal(t, tc.rotate, txt.Rotate)
		})
	}
}

func TestAxisTitleSitsInFrame(t *testing.T) {
	b := scene.Box{X0: 100, Y0: 50, X1: 500, Y1: 350}
	frame := Insets{Top: 20, Right: 30, Bottom: 40, Left: 60}
	st := TextStyle{Size: 10}

	txt := axisTitle(Bottom, b, frame, st, "Q")
	assert.Equal(t, []float64{300, 385, 0}, []float64{txt.X, txt.Y, txt.Rotate})
	txt = axisTitle(Top, b, frame, st, "Q")
	assert.Equal(t, []float64{300, 35, 0}, []float64{txt.X, txt.Y, txt.Rotate})
	txt = axisTitle(Left, b, frame, st, "Q")
	assert.Equal(t, []float64{45, 200, -90}, []float64{txt.X, txt.Y, txt.Rotate})
	txt = axisTitle(Right, b, frame, st, "Q")
	assert.Equal(t, []float64{525, 200, 90}, []float64{txt.X, txt.Y, txt.Rotate})
}

func TestDrawGrid(t *testing.T) {
	s := scene.New(600, 400)
	cfg := DefaultConfig()
	box := cfg.PlotBox()
	spec := AxisSpec{
		ID:       "y-axis",
		Vertical: true,
		Scale:    NewLinear(Interval{0, 10}, Interval{box.Y1, box.Y0}),
		Box:      box,
		Ticks:    5,
	}
	require.NoError(t, DrawGrid(s, scene.RootID, spec))
	assert.False(t, s.Has("y-axis-grid"))

	spec.Grid = true
	require.NoError(t, DrawGrid(s, scene.RootID, spec))
	lines := s.Descendants("y-axis-grid")
	require.NotEmpty(t, lines)
	for _, e := range lines {
		l := e.Node.(*scene.Line)
		assert.Equal(t, box.X0, l.X1)
		assert.Equal(t, box.X1, l.X2)
		assert.Equal(t, l.Y1, l.Y2)
	}
}

var baselineTests = []struct {
	value    Domain
	vertical bool
	lines    [4]bool
	drawn    bool
	at       float64 // data value of the guide
}{
	{Domain{Min: -1, Max: 1}, true, [4]bool{Bottom: true}, true, 0},
	{Domain{Min: 0, Max: 5}, true, [4]bool{Bottom: true}, false, 0},
	{Domain{Min: 0, Max: 5}, true, [4]bool{}, true, 0},
	{Domain{Min: -5, Max: 0}, true, [4]bool{Bottom: true}, true, 0},
	{Domain{Min: -5, Max: 0}, true, [4]bool{Top: true}, false, 0},
	{Domain{Min: 4, Max: 8, Baseline: 4}, true, [4]bool{}, true, 4},
	{Domain{Min: 0, Max: 5}, false, [4]bool{Bottom: true}, true, 0},
	{Domain{Min: 0, Max: 5}, false, [4]bool{Left: true}, false, 0},
	{Domain{Min: 1, Max: 5}, true, [4]bool{}, false, 0},
}

func TestDrawBaseline(t *testing.T) {
	for i, tc := range baselineTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := scene.New(600, 400)
			p := &Panel{Box: scene.Box{X0: 100, Y0: 50, X1: 500, Y1: 350}, Value: tc.value, ValueVertical: tc.vertical}
			if tc.vertical {
				p.Y = NewLinear(tc.value.Interval(), p.yPixels())
			} else {
				p.X = NewLinear(tc.value.Interval(), p.xPixels())
			}
			drawn, err := DrawBaseline(s, scene.RootID, p, scene.Style{Stroke: "black"}, tc.lines)
			require.NoError(t, err)
			assert.Equal(t, tc.drawn, drawn)

			zero := s.Select(scene.RootID, "zero")
			if !tc.drawn {
				assert.Empty(t, zero)
				return
			}
			require.Len(t, zero, 1)
			l := zero[0].Node.(*scene.Line)
			pix := p.ValueScale().Map(tc.at)
			if tc.vertical {
				assert.Equal(t, pix, l.Y1)
				assert.Equal(t, pix, l.Y2)
			} else {
				assert.Equal(t, pix, l.X1)
				assert.Equal(t, pix, l.X2)
			}
		})
	}
}
