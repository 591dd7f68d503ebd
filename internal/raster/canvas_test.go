package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/example/dragboard/internal/scene"
)

func TestFillAndClear(t *testing.T) {
	c := NewCanvas(40, 40, color.Black)
	c.SetFillColor("#FF0000")
	c.FillRect(10, 10, 20, 20)
	if got := c.RGBA().RGBAAt(15, 15); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("fill pixel %+v", got)
	}
	if got := c.RGBA().RGBAAt(5, 5); got.A != 0 {
		t.Fatalf("outside pixel %+v", got)
	}

	c.ClearRect(0, 0, 40, 40)
	if got := c.RGBA().RGBAAt(15, 15); got.A != 0 {
		t.Fatalf("pixel survived clear: %+v", got)
	}
}

func TestClearRectNegativeExtent(t *testing.T) {
	c := NewCanvas(20, 20, color.Black)
	c.SetFillColor("blue")
	c.FillRect(0, 0, 20, 20)
	c.ClearRect(15, 15, -10, -10)
	if got := c.RGBA().RGBAAt(10, 10); got.A != 0 {
		t.Fatalf("pixel not cleared: %+v", got)
	}
	if got := c.RGBA().RGBAAt(2, 2); got.A == 0 {
		t.Fatal("clear spilled outside its rectangle")
	}
}

func TestUnknownFillColorKeepsPrevious(t *testing.T) {
	c := NewCanvas(10, 10, color.Black)
	c.SetFillColor("lime")
	c.SetFillColor("not-a-color")
	c.FillRect(0, 0, 10, 10)
	if got := c.RGBA().RGBAAt(5, 5); got != (color.RGBA{0, 255, 0, 255}) {
		t.Fatalf("pixel %+v", got)
	}
}

func TestPainterOrder(t *testing.T) {
	c := NewCanvas(30, 30, color.Black)
	sc := scene.New()
	sc.Register(scene.NewRectangle(scene.Point{X: 0, Y: 0}, scene.Point{X: 20, Y: 20}, scene.Style{Filled: true, FillColor: "#FF0000"}))
	sc.Register(scene.NewRectangle(scene.Point{X: 10, Y: 10}, scene.Point{X: 30, Y: 30}, scene.Style{Filled: true, FillColor: "#0000FF"}))
	sc.RenderAll(c)

	if got := c.RGBA().RGBAAt(15, 15); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("overlap pixel %+v, want last registered blue", got)
	}
	if i, _ := sc.HitTest(15, 15); i != 0 {
		t.Fatalf("hit test picked %d, want first registered", i)
	}
}

func TestStrokeUsesStrokeColorAfterText(t *testing.T) {
	c := NewCanvas(60, 60, color.RGBA{0, 128, 0, 255})
	c.SetFillColor("white")
	c.DrawText("A", 0, 20, 16)
	c.StrokeRect(30, 30, 20, 20)
	got := c.RGBA().RGBAAt(40, 30)
	if got.G == 0 || got.R != 0 {
		t.Fatalf("stroke pixel %+v should be green", got)
	}
}

func TestStrokeRectIsCrisp(t *testing.T) {
	c := NewCanvas(40, 40, color.Black)
	c.StrokeRect(10, 10, 20, 20)
	for _, p := range [][2]int{{20, 10}, {10, 20}, {30, 20}, {20, 30}} {
		if got := c.RGBA().RGBAAt(p[0], p[1]); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("edge pixel %v = %+v, want opaque black", p, got)
		}
	}
	for _, p := range [][2]int{{20, 9}, {20, 11}, {9, 20}, {11, 20}} {
		if got := c.RGBA().RGBAAt(p[0], p[1]); got.A != 0 {
			t.Errorf("pixel %v next to the edge = %+v, want transparent", p, got)
		}
	}
}

func TestDrawTextPaints(t *testing.T) {
	c := NewCanvas(100, 40, color.Black)
	c.SetFillColor("#000000")
	c.DrawText("CLEAR", 0, 27, 20)
	painted := 0
	b := c.RGBA().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.RGBA().RGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("expected glyph pixels")
	}
	c.DrawText("ignored", 0, 0, 0)
}

func TestDashedStrokeLeavesGaps(t *testing.T) {
	c := NewCanvas(40, 10, color.Black)
	c.SetDashPattern([]int{5, 5})
	c.StrokeRect(0.5, 0.5, 39, 8)
	c.ResetDashPattern()
	gaps := 0
	for x := 1; x < 39; x++ {
		if c.RGBA().RGBAAt(x, 0).A == 0 {
			gaps++
		}
	}
	if gaps == 0 {
		t.Fatal("expected gaps in the dashed edge")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{in: "red", want: color.RGBA{255, 0, 0, 255}},
		{in: " White ", want: color.RGBA{255, 255, 255, 255}},
		{in: "#112233", want: color.RGBA{0x11, 0x22, 0x33, 255}},
		{in: "#11223344", want: color.RGBA{0x11, 0x22, 0x33, 0x44}},
		{in: "", err: true},
		{in: "#12", err: true},
		{in: "#GGGGGG", err: true},
		{in: "nope", err: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}
	if Hex(color.RGBA{0x11, 0x22, 0x33, 255}) != "#112233" || Hex(color.RGBA{1, 2, 3, 4}) != "#01020304" {
		t.Fatal("unexpected Hex output")
	}
}

func TestHostAcquire(t *testing.T) {
	h := NewHost(64, 32, color.Black, ControlID, PaintID, PaintID)
	c, err := h.Acquire(PaintID)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if c.Width() != 64 || c.Height() != 32 {
		t.Fatalf("size %dx%d", c.Width(), c.Height())
	}
	if _, err := h.Acquire("missing"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Fatalf("expected ErrSurfaceNotFound, got %v", err)
	}
}

func TestCompositeStacksLayers(t *testing.T) {
	bottom := NewCanvas(10, 10, color.Black)
	top := NewCanvas(10, 10, color.Black)
	bottom.SetFillColor("#FF0000")
	bottom.FillRect(0, 0, 10, 10)
	top.SetFillColor("#0000FF")
	top.FillRect(0, 0, 5, 10)

	out := Composite(color.White, bottom, top)
	if got := out.RGBAAt(2, 2); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("top layer pixel %+v", got)
	}
	if got := out.RGBAAt(8, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("bottom layer pixel %+v", got)
	}
	empty := Composite(color.White, NewCanvas(4, 4, color.Black))
	if got := empty.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("background pixel %+v", got)
	}
}
