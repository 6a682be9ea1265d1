package scene

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ParseColor converts a CSS color to a color.Color. It returns nil for
// "", "none" and "transparent" and black for anything it does not know.
func ParseColor(s string) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
			}
		}
	}
	return color.Black
}

func withOpacity(c color.Color, opacity float64) color.Color {
	if c == nil || opacity <= 0 || opacity >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.NRGBA64{uint16(r), uint16(g), uint16(b), uint16(float64(a) * opacity)}
}

// Draw paints the whole scene onto c. Scene coordinates are flipped so
// that the scene's top-left corner maps to the top-left corner of c.
func (s *Scene) Draw(c draw.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := renderer{c: c}
	for _, e := range s.root.Children {
		r.element(e)
	}
}

type renderer struct {
	c draw.Canvas
}

func (r *renderer) pt(x, y float64) vg.Point {
	return vg.Point{X: r.c.Min.X + vg.Length(x), Y: r.c.Max.Y - vg.Length(y)}
}

func (r *renderer) lineStyle(st Style) (draw.LineStyle, bool) {
	col := withOpacity(ParseColor(st.Stroke), st.Opacity)
	if col == nil {
		return draw.LineStyle{}, false
	}
	w := st.StrokeWidth
	if w == 0 {
		w = 1
	}
	ls := draw.LineStyle{Color: col, Width: vg.Length(w)}
	for _, d := range st.Dash {
		ls.Dashes = append(ls.Dashes, vg.Length(d))
	}
	return ls, true
}

func (r *renderer) element(e *Element) {
	switch n := e.Node.(type) {
	case *Rect:
		rect := vg.Rectangle{Min: r.pt(n.X, n.Y+n.H), Max: r.pt(n.X+n.W, n.Y)}
		if col := withOpacity(ParseColor(n.Fill), n.Opacity); col != nil {
			r.c.SetColor(col)
			r.c.Fill(rect.Path())
		}
		if ls, ok := r.lineStyle(n.Style); ok {
			r.c.SetLineStyle(ls)
			r.c.Stroke(rect.Path())
		}
	case *Line:
		if ls, ok := r.lineStyle(n.Style); ok {
			a, b := r.pt(n.X1, n.Y1), r.pt(n.X2, n.Y2)
			r.c.StrokeLine2(ls, a.X, a.Y, b.X, b.Y)
		}
	case *Circle:
		center := r.pt(n.CX, n.CY)
		var p vg.Path
		p.Move(vg.Point{X: center.X + vg.Length(n.R), Y: center.Y})
		p.Arc(center, vg.Length(n.R), 0, 2*math.Pi)
		p.Close()
		if col := withOpacity(ParseColor(n.Fill), n.Opacity); col != nil {
			r.c.SetColor(col)
			r.c.Fill(p)
		}
		if ls, ok := r.lineStyle(n.Style); ok {
			r.c.SetLineStyle(ls)
			r.c.Stroke(p)
		}
	case *Path:
		pts := make([]vg.Point, len(n.Points))
		for i, p := range n.Points {
			pts[i] = r.pt(p.X, p.Y)
		}
		if col := withOpacity(ParseColor(n.Fill), n.Opacity); col != nil && n.Closed {
			r.c.FillPolygon(col, pts)
		}
		if ls, ok := r.lineStyle(n.Style); ok && len(pts) > 1 {
			if n.Closed {
				pts = append(pts, pts[0])
			}
			r.c.StrokeLines(ls, pts)
		}
	case *Text:
		r.text(n)
	}
	for _, c := range e.Children {
		r.element(c)
	}
}

func (r *renderer) text(t *Text) {
	fill := t.Fill
	if fill == "" {
		fill = "black"
	}
	col := withOpacity(ParseColor(fill), t.Opacity)
	if col == nil || t.Text == "" {
		return
	}
	size := t.Size
	if size <= 0 {
		size = 12
	}
	font, err := vg.MakeFont(DefaultFont, vg.Length(size))
	if err != nil {
		return
	}
	sty := draw.TextStyle{
		Color:    col,
		Font:     font,
		Rotation: -t.Rotate * math.Pi / 180,
	}
	switch t.Anchor {
	case AnchorMiddle:
		sty.XAlign = draw.XCenter
	case AnchorEnd:
		sty.XAlign = draw.XRight
	default:
		sty.XAlign = draw.XLeft
	}
	switch t.Baseline {
	case BaselineHanging:
		sty.YAlign = draw.YTop
	case BaselineMiddle:
		sty.YAlign = draw.YCenter
	default:
		sty.YAlign = draw.YBottom
	}
	r.c.FillText(sty, r.pt(t.X, t.Y), t.Text)
}

// WriteSVG renders the scene as an SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	c := vgsvg.New(vg.Length(s.Width), vg.Length(s.Height))
	s.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// WritePNG renders the scene as a PNG image.
func (s *Scene) WritePNG(w io.Writer) error {
	img := vgimg.New(vg.Length(s.Width), vg.Length(s.Height))
	s.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}
