package chart

import "fmt"

// Side names one edge of the plot area.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = []string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < Top || s > Left {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// Vertical reports whether s is the left or right edge.
func (s Side) Vertical() bool {
	return s == Left || s == Right
}

// Opposite returns the edge across the plot area.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// ParseSide converts "top", "right", "bottom" or "left" to a Side.
func ParseSide(name string) (Side, bool) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return 0, false
}

// Insets are per-side distances in pixels.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal is the sum of the left and right inset.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical is the sum of the top and bottom inset.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Get returns the inset of side s.
func (i Insets) Get(s Side) float64 {
	return [4]float64{i.Top, i.Right, i.Bottom, i.Left}[s]
}

func (i *Insets) set(s Side, v float64) {
	switch s {
	case Top:
		i.Top = v
	case Right:
		i.Right = v
	case Bottom:
		i.Bottom = v
	case Left:
		i.Left = v
	}
}
