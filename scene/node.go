// Package scene is a retained drawing surface: a tree of primitive shapes
// addressed by ids, with pointer-event callbacks, text measurement and
// rendering through gonum's vg canvases.
//
// Coordinates follow the host document convention: the origin is the
// top-left corner and y grows downwards.
package scene

import "math"

// Box is an axis-aligned rectangle with X0<=X1 and Y0<=Y1.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// NewBox returns the canonical box spanned by the two corners.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)}
}

func (b Box) W() float64 { return b.X1 - b.X0 }
func (b Box) H() float64 { return b.Y1 - b.Y0 }

// Center returns the center of b.
func (b Box) Center() (x, y float64) { return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2 }

// Contains reports whether (x,y) lies inside b.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Style is the paint of a primitive. Colors are CSS colors ("#rrggbb",
// "#rgb" or a color name); the empty string and "none" paint nothing.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        []float64
	Opacity     float64 // 0 is treated as fully opaque
}

// Attrs are the attributes common to all nodes.
type Attrs struct {
	ID    string // generated by the scene if empty
	Class string
	Title string
}

// Node is a primitive that can be appended to a Scene.
type Node interface {
	attrs() *Attrs
	// Kind names the primitive, e.g. "rect".
	Kind() string
	// Bounds returns the geometry covered by the node.
	Bounds() Box
}

// Group is a container without geometry of its own.
type Group struct {
	Attrs
}

func (g *Group) attrs() *Attrs { return &g.Attrs }
func (*Group) Kind() string     { return "g" }
func (*Group) Bounds() Box      { return Box{} }

// Rect is a rectangle.
type Rect struct {
	Attrs
	Style
	X, Y, W, H float64
}

func (r *Rect) attrs() *Attrs { return &r.Attrs }
func (*Rect) Kind() string     { return "rect" }
func (r *Rect) Bounds() Box    { return NewBox(r.X, r.Y, r.X+r.W, r.Y+r.H) }

// Line is a straight line segment.
type Line struct {
	Attrs
	Style
	X1, Y1, X2, Y2 float64
}

func (l *Line) attrs() *Attrs { return &l.Attrs }
func (*Line) Kind() string     { return "line" }
func (l *Line) Bounds() Box    { return NewBox(l.X1, l.Y1, l.X2, l.Y2) }

// Circle is a filled or stroked circle.
type Circle struct {
	Attrs
	Style
	CX, CY, R float64
}

func (c *Circle) attrs() *Attrs { return &c.Attrs }
func (*Circle) Kind() string     { return "circle" }
func (c *Circle) Bounds() Box {
	return Box{c.CX - c.R, c.CY - c.R, c.CX + c.R, c.CY + c.R}
}

// Point is a vertex of a Path.
type Point struct{ X, Y float64 }

// Path is a polyline, optionally closed.
type Path struct {
	Attrs
	Style
	Points []Point
	Closed bool
}

func (p *Path) attrs() *Attrs { return &p.Attrs }
func (*Path) Kind() string     { return "path" }
func (p *Path) Bounds() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	b := Box{p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		b.X0, b.X1 = math.Min(b.X0, pt.X), math.Max(b.X1, pt.X)
		b.Y0, b.Y1 = math.Min(b.Y0, pt.Y), math.Max(b.Y1, pt.Y)
	}
	return b
}

// Text anchors (horizontal) and baselines (vertical), named like their
// SVG counterparts.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"

	BaselineAuto    = "auto"
	BaselineMiddle  = "middle"
	BaselineHanging = "hanging"
)

// Text is a single line of text anchored at (X,Y).
type Text struct {
	Attrs
	Style
	X, Y     float64
	Text     string
	Size     float64
	Anchor   string
	Baseline string
	Rotate   float64 // degrees, clockwise
}

func (t *Text) attrs() *Attrs { return &t.Attrs }
func (*Text) Kind() string     { return "text" }
func (t *Text) Bounds() Box    { return Box{t.X, t.Y, t.X, t.Y} }
