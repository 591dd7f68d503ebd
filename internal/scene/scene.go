package scene

import "fmt"

// IndexError reports direct access outside the shapes held by a Scene. It is
// raised as a panic because callers are expected to only use indexes handed
// out by HitTest.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("scene: index %d out of range [0,%d)", e.Index, e.Len)
}

// Scene is an ordered collection of shapes. Insertion order is render order
// (later shapes paint over earlier ones) and hit test priority (earlier
// shapes win).
type Scene struct {
	shapes []Shape
}

// New returns an empty Scene.
func New() *Scene { return &Scene{} }

// Register appends s.
func (sc *Scene) Register(s Shape) {
	sc.shapes = append(sc.shapes, s)
}

// Clear removes every shape.
func (sc *Scene) Clear() {
	sc.shapes = nil
}

// UnregisterAll is an alias for Clear.
func (sc *Scene) UnregisterAll() { sc.Clear() }

// Len returns the number of shapes.
func (sc *Scene) Len() int { return len(sc.shapes) }

// Shapes returns a copy of the shape list in insertion order.
func (sc *Scene) Shapes() []Shape {
	out := make([]Shape, len(sc.shapes))
	copy(out, sc.shapes)
	return out
}

// RenderAll draws every shape in insertion order.
func (sc *Scene) RenderAll(c Canvas) {
	for _, s := range sc.shapes {
		s.Render(c)
	}
}

// HitTest returns the index of the earliest registered shape containing
// (x, y).
func (sc *Scene) HitTest(x, y float64) (int, bool) {
	for i, s := range sc.shapes {
		if s.ContainsPoint(x, y) {
			return i, true
		}
	}
	return -1, false
}

// DispatchClick clicks the shape HitTest finds, if any, and reports whether
// one was clicked.
func (sc *Scene) DispatchClick(x, y float64) bool {
	i, ok := sc.HitTest(x, y)
	if !ok {
		return false
	}
	sc.shapes[i].OnClick()
	return true
}

// ShapeAt returns the shape at index i.
func (sc *Scene) ShapeAt(i int) Shape {
	sc.check(i)
	return sc.shapes[i]
}

// ReplaceAt swaps the shape at index i for s.
func (sc *Scene) ReplaceAt(i int, s Shape) {
	sc.check(i)
	sc.shapes[i] = s
}

// MoveTo moves the shape at index i in place.
func (sc *Scene) MoveTo(i int, x, y float64) {
	sc.check(i)
	sc.shapes[i].MoveTo(x, y)
}

func (sc *Scene) check(i int) {
	if i < 0 || i >= len(sc.shapes) {
		panic(&IndexError{Index: i, Len: len(sc.shapes)})
	}
}
