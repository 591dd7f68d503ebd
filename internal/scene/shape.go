package scene

// Point is a position in surface pixel space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Shape is anything a Scene can hold: it can be hit tested, rendered,
// clicked and moved. Shapes that do not react to clicks or moves implement
// those methods as no-ops.
type Shape interface {
	ContainsPoint(x, y float64) bool
	Render(c Canvas)
	OnClick()
	MoveTo(x, y float64)
}

// Positioner is implemented by shapes whose position can be read back, which
// is what a drag-move needs to apply a relative delta.
type Positioner interface {
	Origin() Point
}

// Action is invoked when a Button is clicked.
type Action interface {
	Do()
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func()

func (f ActionFunc) Do() {
	if f != nil {
		f()
	}
}

// ValueAction receives the newly selected value of a ToggleStateButton.
type ValueAction[V any] interface {
	Do(v V)
}

// ValueActionFunc adapts a plain function to ValueAction.
type ValueActionFunc[V any] func(V)

func (f ValueActionFunc[V]) Do(v V) {
	if f != nil {
		f(v)
	}
}
