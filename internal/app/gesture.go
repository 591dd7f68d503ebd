package app

import (
	"github.com/example/dragboard/internal/scene"
	"github.com/example/dragboard/internal/surface"
)

// PointerDown starts a gesture at the event position.
func (a *App) PointerDown(e surface.PointerEvent) {
	p := e.Point()
	a.drag.From = p
	a.drag.To = p
	a.drag.LastDelta = scene.Point{}
	a.drag.Dragging = true

	if a.tool == ToolMove {
		a.selected, a.hasSelected = a.paint.Scene().HitTest(p.X, p.Y)
	}
}

// PointerMove updates the drag state and, while dragging, shows the preview
// rectangle or moves the selected shape.
func (a *App) PointerMove(e surface.PointerEvent) {
	p := e.Point()
	a.drag.LastDelta = p.Sub(a.drag.To)
	a.drag.To = p
	if !a.drag.Dragging {
		return
	}

	switch a.tool {
	case ToolDraw:
		a.control.ClearAndRedraw()
		c := a.control.Canvas()
		c.SetDashPattern(previewDash)
		scene.NewRectangle(a.drag.From, p, scene.Style{}).Render(c)
		c.ResetDashPattern()
	case ToolMove:
		if !a.hasSelected {
			return
		}
		sc := a.paint.Scene()
		pos, ok := sc.ShapeAt(a.selected).(scene.Positioner)
		if !ok {
			return
		}
		next := pos.Origin().Add(a.drag.LastDelta)
		sc.MoveTo(a.selected, next.X, next.Y)
		a.paint.ClearAndRedraw()
	}
}

// PointerUp ends the gesture: in draw mode the dragged rectangle is
// committed to the paint scene, and in every mode the release position is
// dispatched as a click to both surfaces.
func (a *App) PointerUp(e surface.PointerEvent) {
	p := e.Point()
	a.drag.To = p
	wasDragging := a.drag.Dragging
	a.drag.Dragging = false

	if wasDragging && a.tool == ToolDraw {
		r := scene.NewRectangle(a.drag.From, p, a.shapeStyle)
		a.paint.RegisterShape(r)
		a.paint.ClearAndRedraw()
		if a.onCommit != nil {
			a.onCommit(*r)
		}
	}

	a.paint.DispatchClick(p.X, p.Y)
	a.paint.ClearAndRedraw()
	a.control.DispatchClick(p.X, p.Y)
	a.control.ClearAndRedraw()
}
