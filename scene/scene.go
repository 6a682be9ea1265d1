package scene

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"gonum.org/v1/plot/vg"
)

// RootID is the id of the element every Scene starts with.
const RootID = "body"

// ErrNotFound is returned for operations on unknown element ids.
var ErrNotFound = errors.New("scene: no such element")

// EventKind selects a pointer interaction.
type EventKind int

const (
	PointerOver EventKind = iota
	PointerOut
	Click
)

func (k EventKind) String() string {
	return []string{"pointerover", "pointerout", "click"}[int(k)]
}

// Event describes one pointer interaction delivered to a handler.
type Event struct {
	Kind   EventKind
	Target string // id of the element the handler is attached to
	X, Y   float64
}

// Handler is a pointer-event callback.
type Handler func(Event)

// An Element is a node placed in a Scene.
type Element struct {
	ID       string
	Serial   int // unique per Scene, never reused
	Node     Node
	Parent   *Element
	Children []*Element

	handlers map[EventKind][]Handler
}

// Scene is a tree of elements rooted at RootID. All methods are safe for
// concurrent use; handlers run without the scene lock held so they may
// modify the scene.
type Scene struct {
	Width, Height float64

	mu     sync.Mutex
	root   *Element
	byID   map[string]*Element
	serial int
	fonts  map[float64]vg.Font
}

// New returns an empty scene of the given size in pixels.
func New(width, height float64) *Scene {
	s := &Scene{
		Width:  width,
		Height: height,
		byID:   make(map[string]*Element),
		fonts:  make(map[float64]vg.Font),
	}
	s.root = &Element{ID: RootID, Node: &Group{Attrs: Attrs{ID: RootID}}}
	s.byID[RootID] = s.root
	return s
}

// Append adds n as the last child of parent and returns its id. If n has no
// id one is generated from the parent id.
func (s *Scene) Append(parent string, n Node) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[parent]
	if !ok {
		return "", fmt.Errorf("append to %q: %w", parent, ErrNotFound)
	}
	s.serial++
	a := n.attrs()
	if a.ID == "" {
		a.ID = parent + "-" + n.Kind() + strconv.Itoa(s.serial)
	}
	if _, dup := s.byID[a.ID]; dup {
		return "", fmt.Errorf("scene: duplicate element id %q", a.ID)
	}
	e := &Element{ID: a.ID, Serial: s.serial, Node: n, Parent: p}
	p.Children = append(p.Children, e)
	s.byID[a.ID] = e
	return a.ID, nil
}

// Remove deletes the element id and everything below it. It reports
// whether the element existed. The root cannot be removed.
func (s *Scene) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok || e == s.root {
		return false
	}
	p := e.Parent
	for i, c := range p.Children {
		if c == e {
			p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
			break
		}
	}
	s.forget(e)
	return true
}

func (s *Scene) forget(e *Element) {
	delete(s.byID, e.ID)
	for _, c := range e.Children {
		s.forget(c)
	}
	e.Children = nil
	e.handlers = nil
}

// Has reports whether an element with the given id exists.
func (s *Scene) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok
}

// Lookup returns the element id.
func (s *Scene) Lookup(id string) (*Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	return e, ok
}

// Descendants returns all elements strictly below id in document order.
func (s *Scene) Descendants(id string) []*Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return nil
	}
	var all []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		for _, c := range e.Children {
			all = append(all, c)
			walk(c)
		}
	}
	walk(e)
	return all
}

// Select returns the elements below id whose node has the given class.
func (s *Scene) Select(id, class string) []*Element {
	var sel []*Element
	for _, e := range s.Descendants(id) {
		if e.Node.attrs().Class == class {
			sel = append(sel, e)
		}
	}
	return sel
}

// On registers h for events of the given kind on element id.
func (s *Scene) On(id string, kind EventKind, h Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("listen on %q: %w", id, ErrNotFound)
	}
	if e.handlers == nil {
		e.handlers = make(map[EventKind][]Handler)
	}
	e.handlers[kind] = append(e.handlers[kind], h)
	return nil
}

// Dispatch delivers a pointer event to the handlers of element id, the way
// a host event loop would. It reports whether any handler ran.
func (s *Scene) Dispatch(id string, kind EventKind, x, y float64) bool {
	s.mu.Lock()
	e, ok := s.byID[id]
	var hs []Handler
	if ok {
		hs = append(hs, e.handlers[kind]...)
	}
	s.mu.Unlock()

	ev := Event{Kind: kind, Target: id, X: x, Y: y}
	for _, h := range hs {
		h(ev)
	}
	return len(hs) > 0
}

// Measure returns the rendered width of text in the default font at the
// given size.
func (s *Scene) Measure(text string, size float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.font(size)
	if err != nil {
		// Rough average glyph width of a sans-serif font.
		return 0.55 * size * float64(len([]rune(text)))
	}
	return float64(f.Width(text))
}

// font returns the cached regular font of the given size; s.mu is held.
func (s *Scene) font(size float64) (vg.Font, error) {
	if f, ok := s.fonts[size]; ok {
		return f, nil
	}
	f, err := vg.MakeFont(DefaultFont, vg.Length(size))
	if err != nil {
		return vg.Font{}, err
	}
	s.fonts[size] = f
	return f, nil
}

// DefaultFont is the font used for measuring and drawing all text.
var DefaultFont = "Helvetica"
