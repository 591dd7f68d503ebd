package scene

// Style controls how a Rectangle is painted. An empty FillColor leaves the
// canvas fill color untouched.
type Style struct {
	Filled    bool
	FillColor string
}

// Rectangle is an axis aligned rectangle spanning From to From+Size. Size may
// be negative when the rectangle was dragged up or to the left; the stored
// geometry keeps that direction and normalization happens when it is drawn
// or hit tested.
type Rectangle struct {
	From  Point
	Size  Point
	Style Style
}

var (
	_ Shape      = (*Rectangle)(nil)
	_ Positioner = (*Rectangle)(nil)
)

// NewRectangle returns the rectangle with corners from and to.
func NewRectangle(from, to Point, style Style) *Rectangle {
	return &Rectangle{From: from, Size: to.Sub(from), Style: style}
}

// RectangleWithSize returns the rectangle anchored at from with the given
// width and height.
func RectangleWithSize(from, size Point, style Style) *Rectangle {
	return &Rectangle{From: from, Size: size, Style: style}
}

// To returns the corner opposite From.
func (r *Rectangle) To() Point { return r.From.Add(r.Size) }

// Origin implements Positioner.
func (r *Rectangle) Origin() Point { return r.From }

// Bounds returns the normalized corners of r, min first.
func (r *Rectangle) Bounds() (lo, hi Point) {
	lo, hi = r.From, r.To()
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	return lo, hi
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r *Rectangle) ContainsPoint(x, y float64) bool {
	lo, hi := r.Bounds()
	return lo.X <= x && x <= hi.X && lo.Y <= y && y <= hi.Y
}

func (r *Rectangle) Render(c Canvas) {
	if r.Style.FillColor != "" {
		c.SetFillColor(r.Style.FillColor)
	}
	lo, hi := r.Bounds()
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if r.Style.Filled {
		c.FillRect(lo.X, lo.Y, w, h)
		return
	}
	c.StrokeRect(lo.X, lo.Y, w, h)
}

// OnClick does nothing; rectangles are passive.
func (r *Rectangle) OnClick() {}

// MoveTo repositions the From corner, keeping the size.
func (r *Rectangle) MoveTo(x, y float64) {
	r.From = Point{x, y}
}
