package data

// Rect is a rectangle spanned by (X0,Y0) and (X1,Y1). The corners need not
// be ordered: a bar runs from its baseline corner to its value corner.
type Rect struct{ X0, Y0, X1, Y1 float64 }

// Transpose swaps the roles of x and y, turning a vertical bar into a
// horizontal one.
func (r Rect) Transpose() Rect { return Rect{r.Y0, r.X0, r.Y1, r.X1} }

// Rects is a list of bar rectangles in drawing order.
type Rects []Rect

// Corners returns the two corners of rectangle i.
func (r Rects) Corners(i int) (x0, y0, x1, y1 float64) { return r[i].X0, r[i].Y0, r[i].X1, r[i].Y1 }
