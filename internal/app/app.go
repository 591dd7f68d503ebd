// Package app implements the drag-and-drop interaction controller that
// turns pointer gestures on the control surface into scene edits on the
// paint surface.
package app

import (
	"github.com/example/dragboard/internal/scene"
	"github.com/example/dragboard/internal/surface"
)

// ToolMode selects how a gesture is interpreted.
type ToolMode int

const (
	ToolDraw ToolMode = iota
	ToolMove
)

func (m ToolMode) String() string {
	switch m {
	case ToolDraw:
		return "draw"
	case ToolMove:
		return "move"
	}
	return "unknown"
}

// DragState tracks the pointer between events.
type DragState struct {
	From      scene.Point
	To        scene.Point
	Dragging  bool
	LastDelta scene.Point
}

var (
	clearButtonRect = scene.RectangleWithSize(scene.Point{X: 0, Y: 0}, scene.Point{X: 100, Y: 40}, scene.Style{})
	toolButtonRect  = scene.RectangleWithSize(scene.Point{X: 0, Y: 45}, scene.Point{X: 100, Y: 40}, scene.Style{})
)

// previewDash is the dash pattern of the rectangle shown while dragging.
var previewDash = []int{5, 5}

// App owns the control overlay and the paint layer and sequences every
// redraw between them. It is not safe for concurrent use; the host delivers
// pointer events one at a time.
type App struct {
	control *surface.Surface
	paint   *surface.Surface

	tool ToolMode
	drag DragState

	// selected indexes the paint scene while a move gesture is active. The
	// paint scene must not gain or lose shapes until the gesture ends.
	selected    int
	hasSelected bool

	buttonStyle scene.ButtonStyle
	shapeStyle  scene.Style

	onTool   func(ToolMode)
	onCommit func(scene.Rectangle)
	onClear  func()
}

// Option modifies an App during creation.
type Option func(*App)

// WithButtonStyle sets the colors of the control buttons.
func WithButtonStyle(s scene.ButtonStyle) Option { return func(a *App) { a.buttonStyle = s } }

// WithShapeStyle sets the style of committed rectangles.
func WithShapeStyle(s scene.Style) Option { return func(a *App) { a.shapeStyle = s } }

// WithToolListener registers a callback for tool changes.
func WithToolListener(fn func(ToolMode)) Option { return func(a *App) { a.onTool = fn } }

// WithCommitListener registers a callback invoked for every committed rectangle.
func WithCommitListener(fn func(scene.Rectangle)) Option { return func(a *App) { a.onCommit = fn } }

// WithClearListener registers a callback invoked after the paint layer is cleared.
func WithClearListener(fn func()) Option { return func(a *App) { a.onClear = fn } }

// New creates an App over the two surfaces.
func New(control, paint *surface.Surface, opts ...Option) *App {
	a := &App{
		control:     control,
		paint:       paint,
		tool:        ToolDraw,
		buttonStyle: scene.DefaultButtonStyle,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Initialize registers the control buttons and paints the control surface
// once.
func (a *App) Initialize() {
	clearBtn := scene.NewButton("CLEAR", clearButtonRect, scene.ActionFunc(a.clearPaint))
	clearBtn.Style = a.buttonStyle
	a.control.RegisterShape(clearBtn)

	toggle := scene.NewToggleStateButton(toolButtonRect,
		[]scene.Option[ToolMode]{
			{Label: "RECT", Value: ToolDraw},
			{Label: "MOVE", Value: ToolMove},
		},
		scene.ValueActionFunc[ToolMode](a.setTool),
	)
	toggle.Style = a.buttonStyle
	a.control.RegisterShape(toggle)

	a.control.ClearAndRedraw()
}

// Bind subscribes the gesture handlers to the control surface.
func (a *App) Bind() {
	a.control.OnPointerDown(a.PointerDown)
	a.control.OnPointerMove(a.PointerMove)
	a.control.OnPointerUp(a.PointerUp)
}

// Tool returns the current tool.
func (a *App) Tool() ToolMode { return a.tool }

// Drag returns a copy of the drag state.
func (a *App) Drag() DragState { return a.drag }

// Selected returns the paint scene index picked by the last pointer-down in
// move mode.
func (a *App) Selected() (int, bool) { return a.selected, a.hasSelected }

// Control returns the control surface.
func (a *App) Control() *surface.Surface { return a.control }

// Paint returns the paint surface.
func (a *App) Paint() *surface.Surface { return a.paint }

func (a *App) setTool(m ToolMode) {
	a.tool = m
	if a.onTool != nil {
		a.onTool(m)
	}
}

func (a *App) clearPaint() {
	a.paint.Clear()
	a.paint.ClearAndRedraw()
	if a.onClear != nil {
		a.onClear()
	}
}
