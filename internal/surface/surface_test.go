package surface

import (
	"testing"

	"github.com/example/dragboard/internal/scene"
	"github.com/example/dragboard/internal/scene/scenetest"
)

func TestClearAndRedrawClearsFirst(t *testing.T) {
	var rec scenetest.Recorder
	s := New("paint", &rec, 1024, 768)
	s.RegisterShape(scene.NewRectangle(scene.Point{X: 1, Y: 1}, scene.Point{X: 5, Y: 5}, scene.Style{}))
	s.RegisterShape(scene.NewRectangle(scene.Point{X: 2, Y: 2}, scene.Point{X: 6, Y: 6}, scene.Style{}))

	s.ClearAndRedraw()
	want := "ClearRect(0,0,1024,768)\nStrokeRect(1,1,4,4)\nStrokeRect(2,2,4,4)"
	if got := rec.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}

	rec.Reset()
	s.Clear()
	if len(rec.Ops) != 0 {
		t.Fatalf("Clear should not draw, got %v", rec.Names())
	}
	s.ClearAndRedraw()
	if got := rec.String(); got != "ClearRect(0,0,1024,768)" {
		t.Fatalf("empty redraw = %s", got)
	}
}

func TestDispatchClickDoesNotRedraw(t *testing.T) {
	var rec scenetest.Recorder
	s := New("control", &rec, 10, 10)
	clicked := false
	s.RegisterShape(scene.NewButton("X", scene.RectangleWithSize(scene.Point{}, scene.Point{X: 5, Y: 5}, scene.Style{}),
		scene.ActionFunc(func() { clicked = true })))

	if !s.DispatchClick(2, 2) || !clicked {
		t.Fatal("expected click to reach the button")
	}
	if len(rec.Ops) != 0 {
		t.Fatalf("dispatch drew %v", rec.Names())
	}
	if s.DispatchClick(8, 8) {
		t.Fatal("expected miss")
	}
}

func TestEmitRoutesByKind(t *testing.T) {
	s := New("control", &scenetest.Recorder{}, 10, 10)
	var got []string
	s.OnPointerDown(func(e PointerEvent) { got = append(got, "down1") })
	s.OnPointerDown(func(e PointerEvent) { got = append(got, "down2") })
	s.OnPointerMove(func(e PointerEvent) { got = append(got, "move") })
	s.OnPointerUp(func(e PointerEvent) {
		if e.Point() != (scene.Point{X: 3, Y: 4}) {
			t.Errorf("up at %v", e.Point())
		}
		got = append(got, "up")
	})
	s.OnPointerUp(nil)

	s.Emit(PointerEvent{Kind: PointerDown})
	s.Emit(PointerEvent{Kind: PointerMove})
	s.Emit(PointerEvent{Kind: PointerUp, OffsetX: 3, OffsetY: 4})

	want := []string{"down1", "down2", "move", "up"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestAccessors(t *testing.T) {
	rec := &scenetest.Recorder{}
	s := New("paint-canvas", rec, 640, 480)
	if s.ID() != "paint-canvas" {
		t.Fatalf("id %q", s.ID())
	}
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Fatalf("size %dx%d", w, h)
	}
	if s.Canvas() != scene.Canvas(rec) {
		t.Fatal("canvas mismatch")
	}
	if s.Scene() == nil || s.Scene().Len() != 0 {
		t.Fatal("expected empty scene")
	}
	if PointerMove.String() != "pointermove" {
		t.Fatalf("kind string %q", PointerMove.String())
	}
}
