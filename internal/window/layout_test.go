package window

import (
	"image"
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		cw, ch, ww, wh int
		want           image.Rectangle
	}{
		{100, 50, 100, 50, image.Rect(0, 0, 100, 50)},
		{100, 50, 200, 200, image.Rect(0, 50, 200, 150)},
		{100, 100, 300, 100, image.Rect(100, 0, 200, 100)},
		{100, 100, 0, 100, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := fit(tt.cw, tt.ch, tt.ww, tt.wh); got != tt.want {
			t.Errorf("fit(%d,%d,%d,%d) = %v, want %v", tt.cw, tt.ch, tt.ww, tt.wh, got, tt.want)
		}
	}
}

func TestToCanvas(t *testing.T) {
	dst := image.Rect(0, 50, 200, 150)
	x, y, inside := toCanvas(dst, 100, 50, 100, 100)
	if x != 50 || y != 25 || !inside {
		t.Errorf("center maps to (%v,%v,%v)", x, y, inside)
	}
	x, y, inside = toCanvas(dst, 100, 50, 10, 10)
	if inside {
		t.Errorf("letterbox point (%v,%v) reported inside", x, y)
	}
	if y != -20 {
		t.Errorf("y = %v, want -20", y)
	}
	if _, _, inside := toCanvas(image.Rectangle{}, 100, 50, 0, 0); inside {
		t.Error("empty destination cannot contain points")
	}
}
