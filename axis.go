package chart

import (
	"math"

	"github.com/vdobler/chart/scene"
)

// AxisSpec is everything needed to draw one screen axis.
type AxisSpec struct {
	ID       string    // id of the group holding the axis
	Vertical bool      // the y axis
	Scale    Scale
	Box      scene.Box // the plot area
	Frame    Insets

	Sides      []Side
	Ticks      int // 0 means automatic
	Title      string
	TitleSides []Side

	Style      *Style
	Hidden     func(s Side, i int) bool
	LineRemove [4]bool

	Grid      bool
	GridStyle scene.Style
}

// Lines reports for every side whether DrawAxis draws an axis line there.
func (a AxisSpec) Lines() [4]bool {
	var on [4]bool
	for _, s := range a.Sides {
		on[s] = !a.LineRemove[s]
	}
	return on
}

// Placement returns the sides of an axis. A category axis that was not
// placed explicitly moves to the opposite side if flip is set.
func Placement(a *AxisConfig, flip bool) []Side {
	if !flip || a.PositionSet {
		return a.Position
	}
	sides := make([]Side, len(a.Position))
	for i, s := range a.Position {
		sides[i] = s.Opposite()
	}
	return sides
}

// axisSpecs derives the specs of both screen axes of the panel.
func axisSpecs(ctx *Context) (x, y AxisSpec) {
	cfg, p := ctx.Config, ctx.Panel
	flip := p.FlipCategory && p.Value.Max <= 0

	mk := func(name string, a *AxisConfig, s Scale, title string, catAxis bool) AxisSpec {
		gs := ctx.Style.Grid.X
		if name == "y" {
			gs = ctx.Style.Grid.Y
		}
		return AxisSpec{
			ID:         ctx.Target.ID + "-" + name + "axis",
			Vertical:   name == "y",
			Scale:      s,
			Box:        p.Box,
			Frame:      cfg.Frame,
			Sides:      Placement(a, flip && catAxis),
			Ticks:      a.Ticks,
			Title:      title,
			TitleSides: a.TitlePosition,
			Style:      &ctx.Style,
			Hidden:     cfg.HiddenLabel,
			LineRemove: cfg.AxisLineRemove,
			Grid:       a.Grid,
			GridStyle:  gs,
		}
	}
	x = mk("x", &cfg.XAxis, p.X, p.XTitle, p.ValueVertical)
	y = mk("y", &cfg.YAxis, p.Y, p.YTitle, !p.ValueVertical)
	return x, y
}

// DrawAxis draws the axis lines, ticks, tick labels and titles of spec
// into a new group below parent.
func DrawAxis(s Surface, parent string, spec AxisSpec) error {
	gid, err := s.Append(parent, &scene.Group{Attrs: scene.Attrs{ID: spec.ID, Class: "axis"}})
	if err != nil {
		return err
	}
	ticks := spec.Scale.AxisTicks(spec.Ticks)
	b := spec.Box
	for _, side := range spec.Sides {
		st := &spec.Style.Axis[side]

		if !spec.LineRemove[side] {
			var l *scene.Line
			switch side {
			case Top:
				l = &scene.Line{X1: b.X0, Y1: b.Y0, X2: b.X1, Y2: b.Y0}
			case Bottom:
				l = &scene.Line{X1: b.X0, Y1: b.Y1, X2: b.X1, Y2: b.Y1}
			case Left:
				l = &scene.Line{X1: b.X0, Y1: b.Y0, X2: b.X0, Y2: b.Y1}
			case Right:
				l = &scene.Line{X1: b.X1, Y1: b.Y0, X2: b.X1, Y2: b.Y1}
			}
			l.Style, l.Class = st.Line, "axis-line"
			if _, err := s.Append(gid, l); err != nil {
				return err
			}
		}

		for i, t := range ticks {
			hidden := spec.Hidden != nil && spec.Hidden(side, i)
			tick := tickLine(side, b, t.Pos, st.Tick.Length)
			tick.Style, tick.Class = st.Tick.Style, "tick"
			if hidden {
				tick.StrokeWidth = st.Tick.StrokeWidth / 2
			}
			if _, err := s.Append(gid, tick); err != nil {
				return err
			}
			if hidden || t.Label == "" {
				continue
			}
			label := tickLabel(side, b, t.Pos, st, spec.Style.LabelGap)
			label.Text = t.Label
			if _, err := s.Append(gid, label); err != nil {
				return err
			}
		}
	}

	if spec.Title == "" {
		return nil
	}
	for _, side := range spec.TitleSides {
		if _, err := s.Append(gid, axisTitle(side, b, spec.Frame, spec.Style.Axis[side].Title, spec.Title)); err != nil {
			return err
		}
	}
	return nil
}

func tickLine(side Side, b scene.Box, pos, length float64) *scene.Line {
	switch side {
	case Top:
		return &scene.Line{X1: pos, Y1: b.Y0, X2: pos, Y2: b.Y0 - length}
	case Bottom:
		return &scene.Line{X1: pos, Y1: b.Y1, X2: pos, Y2: b.Y1 + length}
	case Left:
		return &scene.Line{X1: b.X0 - length, Y1: pos, X2: b.X0, Y2: pos}
	}
	return &scene.Line{X1: b.X1, Y1: pos, X2: b.X1 + length, Y2: pos}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// tickLabel places the label of the tick at pos. The offset from the tick
// moves linearly from the upright to the fully rotated position with the
// rotation angle.
func tickLabel(side Side, b scene.Box, pos float64, st *AxisStyle, gap float64) *scene.Text {
	deg := st.Tick.Rotate
	t := math.Abs(deg) / 90
	size := st.Tick.Label.Size
	off := st.Tick.Length + gap
	txt := &scene.Text{
		Attrs:    scene.Attrs{Class: "tick-label"},
		Style:    scene.Style{Fill: st.Tick.Label.Color},
		Size:     size,
		Rotate:   deg,
		Baseline: scene.BaselineMiddle,
	}
	switch side {
	case Bottom, Top:
		txt.X = pos
		dy := lerp(off+size/2, off, t)
		if side == Bottom {
			txt.Y = b.Y1 + dy
		} else {
			txt.Y = b.Y0 - dy
		}
		switch {
		case deg == 0:
			txt.Anchor = scene.AnchorMiddle
		case (deg > 0) == (side == Bottom):
			txt.Anchor = scene.AnchorStart
		default:
			txt.Anchor = scene.AnchorEnd
		}
	// Text rotated by less than 90 degrees still runs rightwards, so
	// side labels keep their anchor whatever the sign of the rotation.
	case Left:
		txt.X, txt.Y = b.X0-lerp(off, off+size/2, t), pos
		txt.Anchor = scene.AnchorEnd
	case Right:
		txt.X, txt.Y = b.X1+lerp(off, off+size/2, t), pos
		txt.Anchor = scene.AnchorStart
	}
	return txt
}

func axisTitle(side Side, b scene.Box, frame Insets, st TextStyle, title string) *scene.Text {
	cx, cy := b.Center()
	txt := &scene.Text{
		Attrs:    scene.Attrs{Class: "axis-title"},
		Style:    scene.Style{Fill: st.Color},
		Text:     title,
		Size:     st.Size,
		Anchor:   scene.AnchorMiddle,
		Baseline: scene.BaselineMiddle,
	}
	f := frame.Get(side)
	switch side {
	case Top:
		txt.X, txt.Y = cx, b.Y0-f+st.Size/2
	case Bottom:
		txt.X, txt.Y = cx, b.Y1+f-st.Size/2
	case Left:
		txt.X, txt.Y, txt.Rotate = b.X0-f+st.Size/2, cy, -90
	case Right:
		txt.X, txt.Y, txt.Rotate = b.X1+f-st.Size/2, cy, 90
	}
	return txt
}

// DrawGrid draws full length grid lines at the ticks of spec, starting at
// the axis side. It does nothing if the grid of spec is off.
func DrawGrid(s Surface, parent string, spec AxisSpec) error {
	if !spec.Grid {
		return nil
	}
	gid, err := s.Append(parent, &scene.Group{Attrs: scene.Attrs{ID: spec.ID + "-grid", Class: "grid"}})
	if err != nil {
		return err
	}
	b := spec.Box
	side := Bottom
	if spec.Vertical {
		side = Left
	}
	if len(spec.Sides) > 0 {
		side = spec.Sides[0]
	}
	for _, t := range spec.Scale.AxisTicks(spec.Ticks) {
		var l *scene.Line
		switch side {
		case Top:
			l = &scene.Line{X1: t.Pos, Y1: b.Y0, X2: t.Pos, Y2: b.Y1}
		case Bottom:
			l = &scene.Line{X1: t.Pos, Y1: b.Y1, X2: t.Pos, Y2: b.Y0}
		case Left:
			l = &scene.Line{X1: b.X0, Y1: t.Pos, X2: b.X1, Y2: t.Pos}
		case Right:
			l = &scene.Line{X1: b.X1, Y1: t.Pos, X2: b.X0, Y2: t.Pos}
		}
		l.Style = spec.GridStyle
		if _, err := s.Append(gid, l); err != nil {
			return err
		}
	}
	return nil
}

// DrawBaseline draws the zero guide across the plot area. It is drawn if
// the value domain spans both signs, or if the baseline sits on the edge
// of the plot area and lines reports no axis line on that side. It
// reports whether the guide was drawn.
func DrawBaseline(s Surface, parent string, p *Panel, st scene.Style, lines [4]bool) (bool, error) {
	vs := p.ValueScale()
	if vs == nil {
		return false, nil
	}
	v := p.Value
	var at float64
	switch {
	case v.SpansZero():
		at = 0
	case v.Baseline == v.Min || v.Baseline == v.Max:
		side := Left
		switch {
		case p.ValueVertical && v.Baseline == v.Min:
			side = Bottom
		case p.ValueVertical:
			side = Top
		case v.Baseline == v.Max:
			side = Right
		}
		if lines[side] {
			return false, nil
		}
		at = v.Baseline
	default:
		return false, nil
	}

	pix := vs.Map(at)
	l := &scene.Line{Attrs: scene.Attrs{Class: "zero"}, Style: st}
	if p.ValueVertical {
		l.X1, l.Y1, l.X2, l.Y2 = p.Box.X0, pix, p.Box.X1, pix
	} else {
		l.X1, l.Y1, l.X2, l.Y2 = pix, p.Box.Y0, pix, p.Box.Y1
	}
	if _, err := s.Append(parent, l); err != nil {
		return false, err
	}
	return true, nil
}
