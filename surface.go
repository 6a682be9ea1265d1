package chart

import "github.com/vdobler/chart/scene"

// Surface is the host document a chart draws into. *scene.Scene
// implements it.
type Surface interface {
	// Append adds n below parent and returns the id of the new element.
	Append(parent string, n scene.Node) (string, error)
	// Remove deletes the element id and everything below it.
	Remove(id string) bool
	// Has reports whether the element id exists.
	Has(id string) bool
	// On registers a pointer-event handler on element id.
	On(id string, kind scene.EventKind, h scene.Handler) error
	// Measure returns the rendered width of text at the given font size.
	Measure(text string, size float64) float64
}

var _ Surface = (*scene.Scene)(nil)

// Target is the place a chart lives in its Surface: all elements of the
// chart are created below the group ID which is a child of Location.
type Target struct {
	Location string
	ID       string
}
