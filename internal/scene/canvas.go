package scene

// Canvas is the drawing surface shapes render to. Coordinates are surface
// pixels with the origin in the top-left corner and y growing downwards.
type Canvas interface {
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)
	// DrawText draws text with the left end of its baseline at (x, y) using
	// the current fill color.
	DrawText(text string, x, y float64, sizePx int)
	SetDashPattern(segments []int)
	ResetDashPattern()
	SetFillColor(color string)
}
