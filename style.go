package chart

import (
	"math"

	"github.com/vdobler/chart/scene"
)

// TextStyle is the paint of a text.
type TextStyle struct {
	Color string
	Size  float64
}

// AxisStyle controls how one side of the plot area is drawn.
type AxisStyle struct {
	Line  scene.Style
	Title TextStyle
	Tick  struct {
		scene.Style
		Length float64
		Label  TextStyle
		Rotate float64 // degrees
	}
}

// A Style controls how a chart is drawn. It is derived from a Config.
type Style struct {
	Title TextStyle

	// LabelGap is the distance between a tick and its label.
	LabelGap float64

	Grid struct {
		X, Y scene.Style
	}
	Zero scene.Style

	// Axis is indexed by Side.
	Axis [4]AxisStyle

	Bar struct {
		Stroke scene.Style
	}
	Line struct {
		scene.Style
		DotRadius float64
	}

	Tooltip TooltipStyle
}

// TooltipStyle controls the hover annotation.
type TooltipStyle struct {
	Box   scene.Style
	Label TextStyle
	Pad   float64
}

// DefaultStyle returns the Style for cfg. Sizes not controlled by an option
// are derived from the tick font size.
func DefaultStyle(cfg *Config) Style {
	scale := func(x float64, f float64) float64 {
		return math.Round(f*x*10) / 10
	}

	s := Style{}
	s.Title = TextStyle{Color: cfg.Title.Color, Size: cfg.Title.FontSize}
	s.LabelGap = scale(cfg.XAxis.TickFontSize, 0.3)

	grid := scene.Style{Stroke: cfg.GridColor, StrokeWidth: cfg.GridWidth, Dash: cfg.GridDash}
	s.Grid.X, s.Grid.Y = grid, grid
	s.Zero = scene.Style{Stroke: "black", StrokeWidth: 1}

	for side := Top; side <= Left; side++ {
		a := &s.Axis[side]
		ax := cfg.Axis(side.Vertical())
		a.Line = scene.Style{Stroke: cfg.AxisColor[side], StrokeWidth: cfg.AxisStrokeWidth[side]}
		a.Title = TextStyle{Color: "black", Size: ax.TitleFontSize}
		a.Tick.Style = a.Line
		a.Tick.Length = ax.TickSize
		a.Tick.Label = TextStyle{Color: "black", Size: ax.TickFontSize}
		a.Tick.Rotate = ax.TickRotate
	}

	s.Bar.Stroke = scene.Style{Stroke: "none"}
	s.Line.Style = scene.Style{StrokeWidth: cfg.LineStrokeWidth}
	s.Line.DotRadius = cfg.DotRadius

	s.Tooltip.Box = scene.Style{Fill: "white", Stroke: "#333333", StrokeWidth: 0.5, Opacity: 0.9}
	s.Tooltip.Label = TextStyle{Color: "black", Size: scale(cfg.XAxis.TickFontSize, 1)}
	s.Tooltip.Pad = 4
	return s
}
