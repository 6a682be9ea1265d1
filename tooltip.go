package chart

import "github.com/vdobler/chart/scene"

// tooltipID is the id of the hover annotation of a chart. There is at
// most one per chart.
func tooltipID(chartID string) string { return chartID + "-tooltip" }

// attachTooltip shows readout next to the shape id while the pointer is
// over it.
func attachTooltip(ctx *Context, id string, bounds scene.Box, readout string) error {
	s, target, panel, st := ctx.Surface, ctx.Target, ctx.Panel, ctx.Style.Tooltip
	over := func(scene.Event) {
		showTooltip(s, target, panel, st, bounds, readout)
	}
	out := func(scene.Event) {
		s.Remove(tooltipID(target.ID))
	}
	if err := s.On(id, scene.PointerOver, over); err != nil {
		return err
	}
	return s.On(id, scene.PointerOut, out)
}

// showTooltip draws the annotation to the upper right of bounds, moved
// inside the plot area if it would overflow.
func showTooltip(s Surface, target Target, panel *Panel, st TooltipStyle, bounds scene.Box, readout string) {
	id := tooltipID(target.ID)
	s.Remove(id)
	if !s.Has(target.ID) {
		return
	}

	w := s.Measure(readout, st.Label.Size) + 2*st.Pad
	h := st.Label.Size + 2*st.Pad
	box := scene.Box{X0: bounds.X1 + st.Pad, Y0: bounds.Y0 - h - st.Pad}
	box.X1, box.Y1 = box.X0+w, box.Y0+h
	if panel != nil {
		box = panel.Clamp(box)
	}

	gid, err := s.Append(target.ID, &scene.Group{Attrs: scene.Attrs{ID: id, Class: "tooltip"}})
	if err != nil {
		log().Debug("tooltip not shown", "chart", target.ID, "err", err)
		return
	}
	s.Append(gid, &scene.Rect{Style: st.Box, X: box.X0, Y: box.Y0, W: w, H: h})
	s.Append(gid, &scene.Text{
		Style:    scene.Style{Fill: st.Label.Color},
		X:        box.X0 + st.Pad,
		Y:        box.Y0 + h/2,
		Text:     readout,
		Size:     st.Label.Size,
		Anchor:   scene.AnchorStart,
		Baseline: scene.BaselineMiddle,
	})
}
