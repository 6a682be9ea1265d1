package chart

// A Transformation converts between data values in a domain and pixels in
// a pixel range. Backward undoes Forward for the same two intervals.
type Transformation struct {
	Name     string
	Forward  func(domain, pixels Interval, x float64) float64
	Backward func(domain, pixels Interval, p float64) float64
}

// LinearTrans maps the domain proportionally onto the pixel range.
var LinearTrans = Transformation{
	Name:     "linear",
	Forward:  func(d, p Interval, x float64) float64 { return lerpInterval(p, (x-d.Min)/d.Span()) },
	Backward: func(d, p Interval, px float64) float64 { return lerpInterval(d, (px-p.Min)/p.Span()) },
}

// lerpInterval returns the point at fraction t of i.
func lerpInterval(i Interval, t float64) float64 { return i.Min + t*i.Span() }
