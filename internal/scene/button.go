package scene

import "fmt"

// ButtonStyle holds the colors buttons are painted with.
type ButtonStyle struct {
	Background string
	Label      string
}

// DefaultButtonStyle matches the default light theme.
var DefaultButtonStyle = ButtonStyle{Background: "#C8C8C8", Label: "#000000"}

// Button is a labelled, filled rectangle that runs an Action when clicked.
type Button struct {
	Label  string
	Rect   Rectangle
	Action Action
	Style  ButtonStyle
}

var _ Shape = (*Button)(nil)

// NewButton creates a button occupying rect. The rectangle is always
// painted filled.
func NewButton(label string, rect *Rectangle, action Action) *Button {
	b := &Button{Label: label, Rect: *rect, Action: action, Style: DefaultButtonStyle}
	b.Rect.Style.Filled = true
	return b
}

func (b *Button) ContainsPoint(x, y float64) bool { return b.Rect.ContainsPoint(x, y) }

func (b *Button) Render(c Canvas) { renderLabelled(c, &b.Rect, b.Style, b.Label) }

func (b *Button) OnClick() {
	if b.Action != nil {
		b.Action.Do()
	}
}

// MoveTo is a no-op: buttons stay where they were registered.
func (b *Button) MoveTo(x, y float64) {}

// Option is one state of a ToggleStateButton.
type Option[V any] struct {
	Label string
	Value V
}

// ToggleStateButton cycles through a fixed list of options on every click
// and reports the newly selected value to its action.
type ToggleStateButton[V any] struct {
	Rect  Rectangle
	Style ButtonStyle

	options []Option[V]
	index   int
	action  ValueAction[V]
}

// NewToggleStateButton creates a toggle starting at the first option. It
// panics if options is empty.
func NewToggleStateButton[V any](rect *Rectangle, options []Option[V], action ValueAction[V]) *ToggleStateButton[V] {
	if len(options) == 0 {
		panic(fmt.Errorf("scene: toggle button needs at least one option"))
	}
	tb := &ToggleStateButton[V]{
		Rect:    *rect,
		Style:   DefaultButtonStyle,
		options: append([]Option[V](nil), options...),
		action:  action,
	}
	tb.Rect.Style.Filled = true
	return tb
}

// Index returns the position of the current option.
func (tb *ToggleStateButton[V]) Index() int { return tb.index }

// Current returns the selected option.
func (tb *ToggleStateButton[V]) Current() Option[V] { return tb.options[tb.index] }

func (tb *ToggleStateButton[V]) ContainsPoint(x, y float64) bool { return tb.Rect.ContainsPoint(x, y) }

func (tb *ToggleStateButton[V]) Render(c Canvas) {
	renderLabelled(c, &tb.Rect, tb.Style, tb.options[tb.index].Label)
}

// OnClick advances to the next option, wrapping around, and then calls the
// action with the new value.
func (tb *ToggleStateButton[V]) OnClick() {
	tb.index = (tb.index + 1) % len(tb.options)
	if tb.action != nil {
		tb.action.Do(tb.options[tb.index].Value)
	}
}

func (tb *ToggleStateButton[V]) MoveTo(x, y float64) {}

// renderLabelled paints the button background and a label left aligned at
// the rectangle origin, vertically centred, at half the rectangle height.
func renderLabelled(c Canvas, r *Rectangle, style ButtonStyle, label string) {
	bg := *r
	bg.Style = Style{Filled: true, FillColor: style.Background}
	bg.Render(c)

	lo, hi := r.Bounds()
	h := hi.Y - lo.Y
	size := int(h * 0.5)
	if style.Label != "" {
		c.SetFillColor(style.Label)
	}
	c.DrawText(label, lo.X, labelBaseline(lo.Y, h, size), size)
}

// labelBaseline places the baseline so the glyph box sits in the middle of
// a box of height h starting at top.
func labelBaseline(top, h float64, size int) float64 {
	return top + h*0.5 + float64(size)*0.35
}
