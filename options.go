package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/tiendc/go-deepcopy"
	"github.com/vdobler/chart/data"
	"github.com/vdobler/chart/scene"
)

// Options is a sparse option object as supplied by the caller. Keys are
// the option names listed in the package documentation. Resolve never
// modifies it.
type Options map[string]any

// SortOrder is the row order of a sortable bar chart.
type SortOrder int

const (
	SortDefault SortOrder = iota
	SortAscending
	SortDescending
)

var sortOrderNames = []string{"default", "ascending", "descending"}

func (o SortOrder) String() string { return sortOrderNames[o] }

// Next cycles default -> ascending -> descending -> default.
func (o SortOrder) Next() SortOrder { return (o + 1) % 3 }

// IndexRange is an inclusive range of tick indices.
type IndexRange struct{ From, To int }

// Contains reports whether i lies in r.
func (r IndexRange) Contains(i int) bool { return i >= r.From && i <= r.To }

// TitleConfig places a text relative to the chart.
type TitleConfig struct {
	Text     string
	FontSize float64
	Color    string
	X, Y     float64 // fractions of the chart width and height
}

// AxisConfig collects the options of one screen axis (x is horizontal).
type AxisConfig struct {
	Position      []Side
	PositionSet   bool // Position was chosen by the caller
	TitlePosition []Side
	Title         string
	TitleSet      bool
	Ticks         int // 0 selects automatic ticks
	TickSize      float64
	TickRotate    float64 // degrees in [-90, 90]
	TickFontSize  float64
	TitleFontSize float64
	Grid          bool
	Padding       float64 // fraction of the axis range
}

// LegendConfig is the geometry of the legend.
type LegendConfig struct {
	X, Y     float64 // origin as fractions of the chart width and height
	Width    float64 // row width budget in pixels, 0 means up to the chart edge
	FontSize float64
}

// Config is the fully resolved option record. Every field holds a concrete
// value.
type Config struct {
	Location string
	ID       string

	Width, Height float64
	Margin        Insets
	Frame         Insets

	Colors []string
	Title  TitleConfig

	XAxis, YAxis    AxisConfig
	AxisColor       [4]string  // indexed by Side
	AxisStrokeWidth [4]float64 // indexed by Side
	AxisLineRemove  [4]bool    // indexed by Side
	TickLabelHide   map[Side][]IndexRange

	GridColor string
	GridDash  []float64
	GridWidth float64

	GroupPadding    float64
	Stacked         bool
	Horizontal      bool
	LegendOn        bool
	Tooltip         bool
	ScaleStart      float64
	NBins           int
	DotRadius       float64
	LineStrokeWidth float64
	Legend          LegendConfig
	SortOrder       SortOrder

	// Warnings lists the soft problems found by the last resolution.
	Warnings []string
}

// PlotBox returns the plot area: the chart minus margins and frame.
func (c *Config) PlotBox() scene.Box {
	return scene.Box{
		X0: c.Margin.Left + c.Frame.Left,
		Y0: c.Margin.Top + c.Frame.Top,
		X1: c.Width - c.Margin.Right - c.Frame.Right,
		Y1: c.Height - c.Margin.Bottom - c.Frame.Bottom,
	}
}

// Axis returns the configuration of the horizontal (x) or vertical axis.
func (c *Config) Axis(vertical bool) *AxisConfig {
	if vertical {
		return &c.YAxis
	}
	return &c.XAxis
}

// HiddenLabel reports whether tick label i on side s is suppressed.
func (c *Config) HiddenLabel(s Side, i int) bool {
	for _, r := range c.TickLabelHide[s] {
		if r.Contains(i) {
			return true
		}
	}
	return false
}

// DefaultConfig returns the configuration used for an empty option object.
func DefaultConfig() *Config {
	c, err := Resolve(nil)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultConfig() *Config {
	c := &Config{
		Location:        scene.RootID,
		Width:           600,
		Height:          400,
		Colors:          append([]string(nil), Category10...),
		Title:           TitleConfig{FontSize: 16, Color: "black", X: 0.5, Y: 0.06},
		TickLabelHide:   map[Side][]IndexRange{},
		GridColor:       "#e0e0e0",
		GridWidth:       1,
		GroupPadding:    0.05,
		LegendOn:        true,
		Tooltip:         true,
		NBins:           10,
		DotRadius:       3.5,
		LineStrokeWidth: 2,
		Legend:          LegendConfig{X: 0.1, Y: 0.02, FontSize: 12},
	}
	c.XAxis = AxisConfig{Position: []Side{Bottom}, TitlePosition: []Side{Bottom}, Padding: 0.1}
	c.YAxis = AxisConfig{Position: []Side{Left}, TitlePosition: []Side{Left}, Padding: 0.1}
	return c
}

// Resolve builds a Config from raw by merging its keys over the defaults.
// A malformed option yields a *ConfigError and no Config.
func Resolve(raw Options) (*Config, error) {
	return resolve(defaultConfig(), raw, true)
}

// Merge builds a new Config from raw, taking every option raw does not
// mention from c. c itself is not changed.
func (c *Config) Merge(raw Options) (*Config, error) {
	n := new(Config)
	if err := deepcopy.Copy(n, c); err != nil {
		return nil, fmt.Errorf("chart: copying configuration: %w", err)
	}
	return resolve(n, raw, false)
}

// A family is a group of per-side options with a collective shorthand key.
type family struct {
	collective string
	keys       []string
	base       any // all sides if nothing is given
	partial    any // unset sides if only some sides are given
	parse      func(r *resolver, key string) (any, error)
	set        func(c *Config, side int, v any)
}

var fourSides = func(prefix string) []string {
	return []string{prefix + "Top", prefix + "Right", prefix + "Bottom", prefix + "Left"}
}

var families = []family{
	{
		collective: "margin", keys: fourSides("margin"), base: 10.0, partial: 0.0,
		parse: (*resolver).length,
		set:   func(c *Config, s int, v any) { c.Margin.set(Side(s), v.(float64)) },
	},
	{
		collective: "frame", keys: fourSides("frame"), base: 50.0, partial: 30.0,
		parse: (*resolver).length,
		set:   func(c *Config, s int, v any) { c.Frame.set(Side(s), v.(float64)) },
	},
	{
		collective: "axisColor", keys: fourSides("axisColor"), base: "black", partial: "black",
		parse: (*resolver).str,
		set:   func(c *Config, s int, v any) { c.AxisColor[s] = v.(string) },
	},
	{
		collective: "axisStrokeWidth", keys: fourSides("axisStrokeWidth"), base: 1.0, partial: 1.0,
		parse: (*resolver).length,
		set:   func(c *Config, s int, v any) { c.AxisStrokeWidth[s] = v.(float64) },
	},
	{
		collective: "tickSize", keys: []string{"xTickSize", "yTickSize"}, base: 6.0, partial: 6.0,
		parse: (*resolver).length,
		set:   func(c *Config, s int, v any) { c.Axis(s == 1).TickSize = v.(float64) },
	},
	{
		collective: "tickFontSize", keys: []string{"xTickFontSize", "yTickFontSize"}, base: 11.0, partial: 11.0,
		parse: (*resolver).positive,
		set:   func(c *Config, s int, v any) { c.Axis(s == 1).TickFontSize = v.(float64) },
	},
	{
		collective: "axisTitleFontSize", keys: []string{"xTitleFontSize", "yTitleFontSize"}, base: 13.0, partial: 13.0,
		parse: (*resolver).positive,
		set:   func(c *Config, s int, v any) { c.Axis(s == 1).TitleFontSize = v.(float64) },
	},
	{
		collective: "grid", keys: []string{"xGrid", "yGrid"}, base: false, partial: false,
		parse: (*resolver).boolean,
		set:   func(c *Config, s int, v any) { c.Axis(s == 1).Grid = v.(bool) },
	},
}

type resolver struct {
	raw   Options
	c     *Config
	first bool
	used  map[string]bool
}

func resolve(c *Config, raw Options, first bool) (*Config, error) {
	r := &resolver{raw: raw, c: c, first: first, used: make(map[string]bool)}
	c.Warnings = nil
	for _, f := range families {
		if err := r.family(f); err != nil {
			return nil, err
		}
	}
	if err := r.scalars(); err != nil {
		return nil, err
	}
	if err := r.axes(); err != nil {
		return nil, err
	}
	if err := r.lists(); err != nil {
		return nil, err
	}

	var unknown []string
	for k := range raw {
		if !r.used[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		r.warn(k, raw[k], "unknown option ignored")
	}

	w := c.Width - c.Margin.Horizontal() - c.Frame.Horizontal()
	h := c.Height - c.Margin.Vertical() - c.Frame.Vertical()
	if w <= 0 || h <= 0 {
		return nil, &ConfigError{Key: "width", Value: c.Width,
			Reason: fmt.Sprintf("margins and frame leave no room for the plot (%gx%g)", w, h)}
	}
	return c, nil
}

func (r *resolver) family(f family) error {
	if r.has(f.collective) {
		v, err := f.parse(r, f.collective)
		if err != nil {
			return err
		}
		for s := range f.keys {
			f.set(r.c, s, v)
		}
		// Per-side keys are shadowed by the collective key.
		for _, k := range f.keys {
			r.has(k)
		}
		return nil
	}

	some := false
	for _, k := range f.keys {
		if r.has(k) {
			some = true
		}
	}
	for s, k := range f.keys {
		switch {
		case r.has(k):
			v, err := f.parse(r, k)
			if err != nil {
				return err
			}
			f.set(r.c, s, v)
		case r.first && some:
			f.set(r.c, s, f.partial)
		case r.first:
			f.set(r.c, s, f.base)
		}
	}
	return nil
}

func (r *resolver) scalars() error {
	c := r.c
	var err error
	set := func(f func() error) {
		if err == nil {
			err = f()
		}
	}
	num := func(key string, dst *float64, parse func(*resolver, string) (any, error)) {
		set(func() error {
			if !r.has(key) {
				return nil
			}
			v, err := parse(r, key)
			if err == nil {
				*dst = v.(float64)
			}
			return err
		})
	}
	text := func(key string, dst *string) {
		set(func() error {
			if !r.has(key) {
				return nil
			}
			v, err := r.str(key)
			if err == nil {
				*dst = v.(string)
			}
			return err
		})
	}
	flag := func(key string, dst *bool) {
		set(func() error {
			if !r.has(key) {
				return nil
			}
			v, err := r.boolean(key)
			if err == nil {
				*dst = v.(bool)
			}
			return err
		})
	}

	text("location", &c.Location)
	text("id", &c.ID)
	num("width", &c.Width, (*resolver).positive)
	num("height", &c.Height, (*resolver).positive)

	text("title", &c.Title.Text)
	num("titleFontSize", &c.Title.FontSize, (*resolver).positive)
	text("titleColor", &c.Title.Color)
	num("titleX", &c.Title.X, (*resolver).fraction)
	num("titleY", &c.Title.Y, (*resolver).fraction)

	text("gridColor", &c.GridColor)
	num("gridWidth", &c.GridWidth, (*resolver).length)
	num("groupPadding", &c.GroupPadding, (*resolver).fraction)

	flag("stacked", &c.Stacked)
	flag("horizontal", &c.Horizontal)
	flag("legendOn", &c.LegendOn)
	flag("tooltip", &c.Tooltip)
	num("scaleStart", &c.ScaleStart, (*resolver).number)
	num("dotRadius", &c.DotRadius, (*resolver).length)
	num("lineStrokeWidth", &c.LineStrokeWidth, (*resolver).length)

	num("legendX", &c.Legend.X, (*resolver).fraction)
	num("legendY", &c.Legend.Y, (*resolver).fraction)
	num("legendWidth", &c.Legend.Width, (*resolver).length)
	num("legendFontSize", &c.Legend.FontSize, (*resolver).positive)

	set(func() error {
		if !r.has("nBins") {
			return nil
		}
		v, err := r.count("nBins")
		if err != nil {
			return err
		}
		if v.(int) < 1 {
			return r.fail("nBins", "must be at least 1")
		}
		c.NBins = v.(int)
		return nil
	})
	set(func() error {
		if !r.has("sortOrder") {
			return nil
		}
		v, err := r.str("sortOrder")
		if err != nil {
			return err
		}
		for i, n := range sortOrderNames {
			if n == v.(string) {
				c.SortOrder = SortOrder(i)
				return nil
			}
		}
		return r.fail("sortOrder", "must be one of default, ascending, descending")
	})
	return err
}

func (r *resolver) axes() error {
	for _, ax := range []struct {
		prefix  string
		cfg     *AxisConfig
		allowed []Side
	}{
		{"x", &r.c.XAxis, []Side{Top, Bottom}},
		{"y", &r.c.YAxis, []Side{Left, Right}},
	} {
		a := ax.cfg
		if key := ax.prefix + "AxisPosition"; r.has(key) {
			sides, err := r.sides(key, ax.allowed)
			if err != nil {
				return err
			}
			a.Position, a.PositionSet = sides, true
		}
		if key := ax.prefix + "TitlePosition"; r.has(key) {
			sides, err := r.sides(key, ax.allowed)
			if err != nil {
				return err
			}
			a.TitlePosition = sides
		}
		if key := ax.prefix + "Title"; r.has(key) {
			if r.raw[key] == nil {
				a.Title, a.TitleSet = "", false
			} else {
				v, err := r.str(key)
				if err != nil {
					return err
				}
				a.Title, a.TitleSet = v.(string), true
			}
		}
		if key := ax.prefix + "Ticks"; r.has(key) {
			if r.raw[key] == nil {
				a.Ticks = 0
			} else {
				v, err := r.count(key)
				if err != nil {
					return err
				}
				a.Ticks = v.(int)
			}
		}
		if key := ax.prefix + "TickRotate"; r.has(key) {
			v, err := r.number(key)
			if err != nil {
				return err
			}
			if deg := v.(float64); deg < -90 || deg > 90 {
				return r.fail(key, "rotation must lie in [-90, 90] degrees")
			}
			a.TickRotate = v.(float64)
		}
		if key := ax.prefix + "Padding"; r.has(key) {
			v, err := r.fraction(key)
			if err != nil {
				return err
			}
			a.Padding = v.(float64)
		}
	}
	return nil
}

func (r *resolver) lists() error {
	c := r.c
	if name, ok := r.raw["colors"].(string); ok && r.has("colors") {
		colors, ok := Palette(name)
		if !ok {
			return r.fail("colors", "unknown palette "+name)
		}
		c.Colors = colors
	} else if r.has("colors") {
		colors, err := r.strings("colors")
		if err != nil {
			return err
		}
		if len(colors) == 0 {
			return r.fail("colors", "palette must not be empty")
		}
		c.Colors = colors
	}
	if r.has("gridDash") {
		dash, err := r.numbers("gridDash")
		if err != nil {
			return err
		}
		c.GridDash = dash
	}
	if r.has("axisLongLineRemove") {
		names, err := r.strings("axisLongLineRemove")
		if err != nil {
			return err
		}
		c.AxisLineRemove = [4]bool{}
		for _, n := range names {
			s, ok := ParseSide(n)
			if !ok {
				return r.fail("axisLongLineRemove", fmt.Sprintf("unknown side %q", n))
			}
			c.AxisLineRemove[s] = true
		}
	}
	if r.has("tickLabelHide") {
		specs, err := r.strings("tickLabelHide")
		if err != nil {
			return err
		}
		hide := make(map[Side][]IndexRange)
		for _, spec := range specs {
			side, ranges, err := parseLabelHide(spec)
			if err != nil {
				return r.fail("tickLabelHide", err.Error())
			}
			hide[side] = append(hide[side], ranges...)
		}
		c.TickLabelHide = hide
	}
	return nil
}

// parseLabelHide parses "<side> <index-or-range>..." like "bottom 0-2 5".
func parseLabelHide(spec string) (Side, []IndexRange, error) {
	words, err := shellquote.Split(spec)
	if err != nil {
		return 0, nil, fmt.Errorf("entry %q: %v", spec, err)
	}
	if len(words) < 2 {
		return 0, nil, fmt.Errorf("entry %q: want a side followed by indices", spec)
	}
	side, ok := ParseSide(words[0])
	if !ok {
		return 0, nil, fmt.Errorf("entry %q: unknown side %q", spec, words[0])
	}
	var ranges []IndexRange
	for _, w := range words[1:] {
		for _, part := range strings.Split(w, ",") {
			if part == "" {
				continue
			}
			from, to, isRange := strings.Cut(part, "-")
			a, err := strconv.Atoi(from)
			if err != nil || a < 0 {
				return 0, nil, fmt.Errorf("entry %q: bad index %q", spec, part)
			}
			b := a
			if isRange {
				b, err = strconv.Atoi(to)
				if err != nil || b < a {
					return 0, nil, fmt.Errorf("entry %q: bad range %q", spec, part)
				}
			}
			ranges = append(ranges, IndexRange{a, b})
		}
	}
	return side, ranges, nil
}

// ----------------------------------------------------------------------------
// Typed accessors

func (r *resolver) has(key string) bool {
	_, ok := r.raw[key]
	if ok {
		r.used[key] = true
	}
	return ok
}

func (r *resolver) fail(key, reason string) error {
	return &ConfigError{Key: key, Value: r.raw[key], Reason: reason}
}

func (r *resolver) warn(key string, value any, reason string) {
	msg := fmt.Sprintf("option %q (%v): %s", key, value, reason)
	r.c.Warnings = append(r.c.Warnings, msg)
	log().Warn(reason, "option", key, "value", value)
}

func (r *resolver) number(key string) (any, error) {
	f, ok := data.Number(r.raw[key])
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, r.fail(key, "not a number")
	}
	return f, nil
}

func (r *resolver) length(key string) (any, error) {
	v, err := r.number(key)
	if err != nil {
		return nil, err
	}
	if v.(float64) < 0 {
		return nil, r.fail(key, "must not be negative")
	}
	return v, nil
}

func (r *resolver) positive(key string) (any, error) {
	v, err := r.number(key)
	if err != nil {
		return nil, err
	}
	if v.(float64) <= 0 {
		return nil, r.fail(key, "must be positive")
	}
	return v, nil
}

func (r *resolver) count(key string) (any, error) {
	v, err := r.number(key)
	if err != nil {
		return nil, err
	}
	f := v.(float64)
	if f < 0 || f != math.Trunc(f) {
		return nil, r.fail(key, "must be a non-negative integer")
	}
	return int(f), nil
}

// fraction clamps to [0,1] with a warning.
func (r *resolver) fraction(key string) (any, error) {
	v, err := r.number(key)
	if err != nil {
		return nil, err
	}
	f := v.(float64)
	if f < 0 || f > 1 {
		clamped := math.Max(0, math.Min(1, f))
		r.warn(key, f, fmt.Sprintf("clamped to %g", clamped))
		f = clamped
	}
	return f, nil
}

func (r *resolver) boolean(key string) (any, error) {
	switch v := r.raw[key].(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	}
	return nil, r.fail(key, "not a boolean")
}

func (r *resolver) str(key string) (any, error) {
	s, ok := r.raw[key].(string)
	if !ok {
		return nil, r.fail(key, "not a string")
	}
	return s, nil
}

func (r *resolver) strings(key string) ([]string, error) {
	switch v := r.raw[key].(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, r.fail(key, fmt.Sprintf("element %d is not a string", i))
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, r.fail(key, "not an array")
}

func (r *resolver) numbers(key string) ([]float64, error) {
	switch v := r.raw[key].(type) {
	case []float64:
		return append([]float64(nil), v...), nil
	case []int:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out, nil
	case []any:
		out := make([]float64, len(v))
		for i, e := range v {
			f, ok := data.Number(e)
			if !ok {
				return nil, r.fail(key, fmt.Sprintf("element %d is not a number", i))
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, r.fail(key, "not an array")
}

func (r *resolver) sides(key string, allowed []Side) ([]Side, error) {
	names, err := r.strings(key)
	if err != nil {
		return nil, err
	}
	if len(names) > 2 {
		return nil, r.fail(key, "at most two positions")
	}
	var sides []Side
	for _, n := range names {
		s, ok := ParseSide(n)
		if !ok || (s != allowed[0] && s != allowed[1]) {
			return nil, r.fail(key, fmt.Sprintf("position %q not one of %s, %s", n, allowed[0], allowed[1]))
		}
		if len(sides) == 1 && sides[0] == s {
			continue
		}
		sides = append(sides, s)
	}
	return sides, nil
}
