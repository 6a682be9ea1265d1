package chart

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
	"golang.org/x/sync/semaphore"
)

// A Variant is the policy of one chart type: which scales it needs and
// how its shapes are drawn.
type Variant interface {
	// ShapeKind names the primitive the variant draws per value.
	ShapeKind() string

	// Validate checks that the variant can draw t.
	Validate(t *data.Table) error

	// ComputeDomain sets ctx.Panel.
	ComputeDomain(ctx *Context) error

	// DrawShapes draws the data of ctx below ctx.Target.ID.
	DrawShapes(ctx *Context) error
}

// A Decorator draws additional controls after the legend.
type Decorator interface {
	Decorate(ctx *Context) error
}

// Sorter is implemented by variants that reorder their rows.
type Sorter interface {
	SortRows(t *data.Table, legend *LegendState, order SortOrder) *data.Table
}

// State is the lifecycle state of a Chart.
type State int32

const (
	Constructed State = iota
	Validated
	Rendered
	Redrawing
)

func (s State) String() string {
	return []string{"constructed", "validated", "rendered", "redrawing"}[s]
}

var chartSerial atomic.Int64

// Chart is one chart mounted in a Surface. Its methods may be called from
// event handlers and from other goroutines; redraws are serialized and
// coalesced.
type Chart struct {
	surface Surface
	variant Variant
	target  Target

	mu      sync.Mutex
	cfg     *Config
	table   *data.Table
	legend  *LegendState
	order   SortOrder
	state   State
	pending bool

	// redraw is held by the goroutine currently drawing.
	redraw *semaphore.Weighted
}

// New validates options and dataset, mounts a chart drawn by variant into
// surface and returns it. On error nothing is mounted. The chart keeps its
// own copy of dataset.
func New(surface Surface, variant Variant, dataset data.Dataset, options Options) (*Chart, error) {
	c := &Chart{surface: surface, variant: variant, redraw: semaphore.NewWeighted(1)}

	cfg, err := Resolve(options)
	if err != nil {
		return nil, err
	}
	table, err := c.shape(dataset)
	if err != nil {
		return nil, err
	}

	id := cfg.ID
	if id == "" {
		id = "chart-" + strconv.FormatInt(chartSerial.Add(1), 10)
	}
	if !surface.Has(cfg.Location) {
		return nil, &ConfigError{Key: "location", Value: cfg.Location, Reason: "no such element"}
	}
	if surface.Has(id) {
		return nil, &ConfigError{Key: "id", Value: id, Reason: "element id already in use"}
	}
	cfg.ID = id

	c.target = Target{Location: cfg.Location, ID: id}
	c.cfg, c.table = cfg, table
	c.legend = NewLegendState(len(table.Series))
	c.order = cfg.SortOrder
	c.state = Validated

	if err := c.Redraw(); err != nil {
		surface.Remove(id)
		return nil, err
	}
	return c, nil
}

func (c *Chart) shape(ds data.Dataset) (*data.Table, error) {
	clone, err := ds.Clone()
	if err != nil {
		return nil, err
	}
	t, err := data.Shape(clone)
	if err != nil {
		return nil, err
	}
	if err := c.variant.Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the id of the group holding all elements of c.
func (c *Chart) ID() string { return c.target.ID }

// Target returns where c is mounted.
func (c *Chart) Target() Target { return c.target }

// State returns the lifecycle state of c.
func (c *Chart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Config returns the resolved options of the last successful Update.
func (c *Chart) Config() *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Legend returns a copy of the visibility flags.
func (c *Chart) Legend() *LegendState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.legend.Clone()
}

// Order returns the current sort order.
func (c *Chart) Order() SortOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

// Update merges options over the current configuration, replaces the data
// if dataset is not nil and redraws the chart from scratch. If options or
// dataset are invalid the chart keeps its current state and drawing.
func (c *Chart) Update(dataset data.Dataset, options Options) error {
	c.mu.Lock()
	cfg, err := c.cfg.Merge(options)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	// The chart stays where it was mounted.
	cfg.ID, cfg.Location = c.target.ID, c.target.Location

	var table *data.Table
	if dataset != nil {
		if table, err = c.shape(dataset); err != nil {
			c.mu.Unlock()
			return err
		}
	}

	c.cfg = cfg
	if table != nil {
		c.table = table
		c.legend.Resize(len(table.Series))
	}
	if _, ok := options["sortOrder"]; ok {
		c.order = cfg.SortOrder
	}
	c.mu.Unlock()
	return c.Redraw()
}

// Toggle flips the visibility of series i and redraws.
func (c *Chart) Toggle(i int) error {
	c.mu.Lock()
	ok := c.legend.Toggle(i)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("chart %s: no series %d", c.target.ID, i)
	}
	return c.Redraw()
}

// Sort sets the row order of a sortable chart and redraws.
func (c *Chart) Sort(order SortOrder) error {
	if _, ok := c.variant.(Sorter); !ok {
		return fmt.Errorf("chart %s: %s charts cannot be sorted", c.target.ID, c.variant.ShapeKind())
	}
	c.mu.Lock()
	c.order = order
	c.mu.Unlock()
	return c.Redraw()
}

// Redraw removes everything below the chart id and draws the chart again.
// If a redraw is in progress Redraw only asks it to run once more and
// returns nil.
func (c *Chart) Redraw() error {
	c.mu.Lock()
	c.pending = true
	c.mu.Unlock()

	var err error
	for {
		if !c.redraw.TryAcquire(1) {
			return err
		}
		err = c.drain()
		c.redraw.Release(1)

		// A request may have arrived between drain and Release.
		c.mu.Lock()
		again := c.pending
		c.mu.Unlock()
		if !again {
			return err
		}
	}
}

// drain draws until no redraw is pending; c.redraw is held.
func (c *Chart) drain() error {
	var err error
	for {
		c.mu.Lock()
		if !c.pending {
			c.mu.Unlock()
			return err
		}
		c.pending = false
		if c.state != Validated {
			c.state = Redrawing
		}
		ctx := &Context{
			Surface: c.surface,
			Target:  c.target,
			Config:  c.cfg,
			Table:   c.table,
			Legend:  c.legend.Clone(),
			Order:   c.order,
			chart:   c,
		}
		c.mu.Unlock()

		err = c.draw(ctx)

		c.mu.Lock()
		c.state = Rendered
		c.mu.Unlock()
		if err != nil {
			log().Error("redraw failed", "chart", c.target.ID, "err", err)
		}
	}
}

// draw runs the whole pipeline for one redraw.
func (c *Chart) draw(ctx *Context) error {
	s, cfg := ctx.Surface, ctx.Config
	s.Remove(ctx.Target.ID)
	if _, err := s.Append(ctx.Target.Location, &scene.Group{Attrs: scene.Attrs{ID: ctx.Target.ID, Class: "chart"}}); err != nil {
		return err
	}

	ctx.Style = DefaultStyle(cfg)
	if srt, ok := c.variant.(Sorter); ok {
		ctx.Table = srt.SortRows(ctx.Table, ctx.Legend, ctx.Order)
	}
	ctx.Stack = NewStack(len(ctx.Table.Rows), 0)

	if cfg.Title.Text != "" {
		if _, err := ctx.Append(&scene.Text{
			Attrs:    scene.Attrs{Class: "title"},
			Style:    scene.Style{Fill: ctx.Style.Title.Color},
			X:        cfg.Title.X * cfg.Width,
			Y:        cfg.Title.Y * cfg.Height,
			Text:     cfg.Title.Text,
			Size:     ctx.Style.Title.Size,
			Anchor:   scene.AnchorMiddle,
			Baseline: scene.BaselineMiddle,
		}); err != nil {
			return err
		}
	}

	if err := c.variant.ComputeDomain(ctx); err != nil {
		return err
	}
	if ctx.Panel.Value.Baseline != 0 {
		ctx.Stack = NewStack(len(ctx.Table.Rows), ctx.Panel.Value.Baseline)
	}

	xs, ys := axisSpecs(ctx)
	if err := DrawGrid(s, ctx.Target.ID, xs); err != nil {
		return err
	}
	if err := DrawGrid(s, ctx.Target.ID, ys); err != nil {
		return err
	}
	if err := c.variant.DrawShapes(ctx); err != nil {
		return err
	}
	var lines [4]bool
	xl, yl := xs.Lines(), ys.Lines()
	for i := range lines {
		lines[i] = xl[i] || yl[i]
	}
	if _, err := DrawBaseline(s, ctx.Target.ID, ctx.Panel, ctx.Style.Zero, lines); err != nil {
		return err
	}
	if err := DrawAxis(s, ctx.Target.ID, xs); err != nil {
		return err
	}
	if err := DrawAxis(s, ctx.Target.ID, ys); err != nil {
		return err
	}

	if cfg.LegendOn && len(ctx.Table.Series) > 1 {
		toggle := func(i int) {
			if err := c.Toggle(i); err != nil {
				log().Warn("legend toggle failed", "chart", c.target.ID, "series", i, "err", err)
			}
		}
		if err := drawLegend(ctx, toggle); err != nil {
			return err
		}
	}
	if d, ok := c.variant.(Decorator); ok {
		if err := d.Decorate(ctx); err != nil {
			return err
		}
	}
	return nil
}
