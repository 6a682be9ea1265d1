package chart

import (
	"strconv"

	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area of one redraw together with the scales of the
// two screen axes.
type Panel struct {
	Box  scene.Box
	X, Y Scale

	// Inner subdivides a category band of a bar chart: band k belongs to
	// the k-th selected series, a stacked chart has a single inner band.
	Inner *Band

	// Value is the domain of the value axis. ValueVertical tells whether
	// the value axis is the y axis.
	Value         Domain
	ValueVertical bool

	// FlipCategory moves a non-explicit category axis to the opposite side
	// when no value is positive.
	FlipCategory bool

	// Titles of the screen axes.
	XTitle, YTitle string
}

// ValueScale returns the linear scale of the value axis.
func (p *Panel) ValueScale() *Linear {
	s := p.X
	if p.ValueVertical {
		s = p.Y
	}
	l, _ := s.(*Linear)
	return l
}

// MapXY maps the data coordinate (x,y) of two linear scales to a pixel.
func (p *Panel) MapXY(x, y float64) scene.Point {
	xs, _ := p.X.(*Linear)
	ys, _ := p.Y.(*Linear)
	pt := scene.Point{X: x, Y: y}
	if xs != nil {
		pt.X = xs.Map(x)
	}
	if ys != nil {
		pt.Y = ys.Map(y)
	}
	return pt
}

// Clamp moves b inside the plot area, preferring to keep its top-left
// corner visible.
func (p *Panel) Clamp(b scene.Box) scene.Box {
	w, h := b.W(), b.H()
	if b.X1 > p.Box.X1 {
		b.X0 = p.Box.X1 - w
	}
	if b.X0 < p.Box.X0 {
		b.X0 = p.Box.X0
	}
	if b.Y1 > p.Box.Y1 {
		b.Y0 = p.Box.Y1 - h
	}
	if b.Y0 < p.Box.Y0 {
		b.Y0 = p.Box.Y0
	}
	b.X1, b.Y1 = b.X0+w, b.Y0+h
	return b
}

// xPixels and yPixels are the pixel ranges of the plot area. Vertical
// ranges run bottom to top for numeric scales.
func (p *Panel) xPixels() Interval { return Interval{p.Box.X0, p.Box.X1} }
func (p *Panel) yPixels() Interval { return Interval{p.Box.Y1, p.Box.Y0} }

// ----------------------------------------------------------------------------
// Context

// Context is the state of one redraw handed to a Variant.
type Context struct {
	Surface Surface
	Target  Target
	Config  *Config
	Table   *data.Table
	Legend  *LegendState
	Order   SortOrder
	Panel   *Panel
	Style   Style

	// Stack accumulates stacked bars; it is reset at the start of every
	// redraw.
	Stack *Stack

	chart *Chart
}

// Selected returns the indices of the series drawn in this redraw.
func (ctx *Context) Selected() []int { return ctx.Legend.Selected() }

// Color returns the color of series j.
func (ctx *Context) Color(j int) string { return colorAt(ctx.Config.Colors, j) }

// Append adds n below the chart group.
func (ctx *Context) Append(n scene.Node) (string, error) {
	return ctx.Surface.Append(ctx.Target.ID, n)
}

// Shape appends n below the chart group and, if hover annotations are
// enabled, shows readout while the pointer is over it.
func (ctx *Context) Shape(n scene.Node, readout string) (string, error) {
	id, err := ctx.Append(n)
	if err != nil {
		return "", err
	}
	if ctx.Config.Tooltip && readout != "" {
		if err := attachTooltip(ctx, id, n.Bounds(), readout); err != nil {
			return "", err
		}
	}
	return id, nil
}

// CycleSort switches the chart to the next sort order.
func (ctx *Context) CycleSort() error {
	return ctx.chart.Sort(ctx.chart.Order().Next())
}

// ----------------------------------------------------------------------------
// Panel construction

// axisTitles returns the title of the category and of the value axis.
func axisTitles(t *data.Table, cfg *Config) (category, value string) {
	category, value = t.XLabel, t.DisplayLabel()
	if cfg.XAxis.TitleSet {
		category = cfg.XAxis.Title
	}
	if cfg.YAxis.TitleSet {
		value = cfg.YAxis.Title
	}
	return category, value
}

// BarPanel computes the scales of a bar chart over the row keys: the
// category band and value domain, swapped onto the other screen axes if
// the chart is horizontal.
func BarPanel(ctx *Context, keys []string) *Panel {
	cfg := ctx.Config
	p := &Panel{Box: cfg.PlotBox(), FlipCategory: true}
	p.Value = BarDomain(ctx.Table, ctx.Legend, cfg)
	catTitle, valTitle := axisTitles(ctx.Table, cfg)

	var cat *Band
	value := p.Value.Interval()
	if cfg.Horizontal {
		cat = NewBand(keys, Interval{p.Box.Y0, p.Box.Y1}, cfg.YAxis.Padding)
		p.X, p.Y = NewLinear(value, p.xPixels()), cat
		p.XTitle, p.YTitle = valTitle, catTitle
	} else {
		cat = NewBand(keys, p.xPixels(), cfg.XAxis.Padding)
		p.X, p.Y = cat, NewLinear(value, p.yPixels())
		p.ValueVertical = true
		p.XTitle, p.YTitle = catTitle, valTitle
	}

	inner := []string{"stack"}
	if !cfg.Stacked {
		inner = inner[:0]
		for _, j := range ctx.Selected() {
			inner = append(inner, strconv.Itoa(j))
		}
	}
	p.Inner = NewBand(inner, Interval{0, cat.Bandwidth()}, cfg.GroupPadding)
	return p
}

// Category returns the band scale of a bar chart.
func (p *Panel) Category() *Band {
	s := p.Y
	if p.ValueVertical {
		s = p.X
	}
	b, _ := s.(*Band)
	return b
}

// XYPanel builds a panel with a linear value axis on y and x as given.
func XYPanel(ctx *Context, x Scale, values []float64) *Panel {
	cfg := ctx.Config
	catTitle, valTitle := axisTitles(ctx.Table, cfg)
	p := &Panel{Box: cfg.PlotBox(), X: x, ValueVertical: true, XTitle: catTitle, YTitle: valTitle}
	dom := LinearDomain(values, cfg.YAxis.Padding)
	p.Value = Domain{Min: dom.Min, Max: dom.Max}
	p.Y = NewLinear(dom, p.yPixels())
	return p
}
