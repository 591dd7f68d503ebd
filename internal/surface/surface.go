// Package surface binds a drawing canvas to the scene rendered on it and
// relays pointer events from the host.
package surface

import (
	"github.com/example/dragboard/internal/scene"
)

// PointerKind identifies a raw pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	}
	return "pointer?"
}

// PointerEvent carries a pointer position in the surface's own coordinates.
type PointerEvent struct {
	Kind    PointerKind
	OffsetX float64
	OffsetY float64
}

// Point returns the event position.
func (e PointerEvent) Point() scene.Point { return scene.Point{X: e.OffsetX, Y: e.OffsetY} }

// PointerHandler receives pointer events.
type PointerHandler func(PointerEvent)

// Surface owns one canvas and the scene drawn on it.
type Surface struct {
	id       string
	canvas   scene.Canvas
	width    int
	height   int
	scene    *scene.Scene
	handlers map[PointerKind][]PointerHandler
}

// New creates a Surface for a canvas of the given pixel size.
func New(id string, c scene.Canvas, width, height int) *Surface {
	return &Surface{
		id:       id,
		canvas:   c,
		width:    width,
		height:   height,
		scene:    scene.New(),
		handlers: make(map[PointerKind][]PointerHandler),
	}
}

func (s *Surface) ID() string { return s.id }

// Size returns the surface size in pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Canvas returns the canvas so callers can draw ephemeral content that is
// not part of the scene.
func (s *Surface) Canvas() scene.Canvas { return s.canvas }

// Scene returns the scene owned by the surface.
func (s *Surface) Scene() *scene.Scene { return s.scene }

// ClearAndRedraw wipes the whole canvas and renders the scene again.
func (s *Surface) ClearAndRedraw() {
	s.canvas.ClearRect(0, 0, float64(s.width), float64(s.height))
	s.scene.RenderAll(s.canvas)
}

// RegisterShape adds sh to the scene. The canvas is not redrawn.
func (s *Surface) RegisterShape(sh scene.Shape) {
	s.scene.Register(sh)
}

// Clear removes every shape from the scene. The canvas is not redrawn.
func (s *Surface) Clear() {
	s.scene.Clear()
}

// DispatchClick clicks the topmost-priority shape under (x, y). Callers
// redraw afterwards if the click changed anything visible.
func (s *Surface) DispatchClick(x, y float64) bool {
	return s.scene.DispatchClick(x, y)
}

// OnPointerDown subscribes h to pointer-down events.
func (s *Surface) OnPointerDown(h PointerHandler) { s.subscribe(PointerDown, h) }

// OnPointerMove subscribes h to pointer-move events.
func (s *Surface) OnPointerMove(h PointerHandler) { s.subscribe(PointerMove, h) }

// OnPointerUp subscribes h to pointer-up events.
func (s *Surface) OnPointerUp(h PointerHandler) { s.subscribe(PointerUp, h) }

func (s *Surface) subscribe(kind PointerKind, h PointerHandler) {
	if h == nil {
		return
	}
	s.handlers[kind] = append(s.handlers[kind], h)
}

// Emit delivers ev to the handlers subscribed to its kind, in subscription
// order.
func (s *Surface) Emit(ev PointerEvent) {
	for _, h := range s.handlers[ev.Kind] {
		h(ev)
	}
}
