package window

import (
	"image"
	"math"
)

// fit returns the largest rectangle with the canvas aspect ratio centered in
// a window of the given size.
func fit(canvasW, canvasH, winW, winH int) image.Rectangle {
	if canvasW <= 0 || canvasH <= 0 || winW <= 0 || winH <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(float64(winW)/float64(canvasW), float64(winH)/float64(canvasH))
	w := int(float64(canvasW) * scale)
	h := int(float64(canvasH) * scale)
	x0 := (winW - w) / 2
	y0 := (winH - h) / 2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// toCanvas maps a window position into canvas pixels for a canvas drawn at
// dst. inside reports whether the position falls on the canvas.
func toCanvas(dst image.Rectangle, canvasW, canvasH int, x, y float32) (cx, cy float64, inside bool) {
	if dst.Empty() {
		return 0, 0, false
	}
	cx = (float64(x) - float64(dst.Min.X)) * float64(canvasW) / float64(dst.Dx())
	cy = (float64(y) - float64(dst.Min.Y)) * float64(canvasH) / float64(dst.Dy())
	inside = cx >= 0 && cy >= 0 && cx < float64(canvasW) && cy < float64(canvasH)
	return cx, cy, inside
}
