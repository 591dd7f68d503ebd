package window

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var messageFace = basicfont.Face7x13

func (w *Window) drawFrame(s screen.Screen, win screen.Window, width, height int) {
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	w.render(b.RGBA())
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

// render paints the letterboxed board and any status message into dst.
func (w *Window) render(dst *image.RGBA) {
	th := w.board.Theme
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(th.Background), image.Point{}, draw.Src)

	canvasW, canvasH := w.board.Size()
	rect := fit(canvasW, canvasH, bounds.Dx(), bounds.Dy()).Add(bounds.Min)
	frame := w.board.Image(true)
	xdraw.NearestNeighbor.Scale(dst, rect, frame, frame.Bounds(), draw.Src, nil)

	if w.messageActive() {
		drawMessage(dst, w.message, th.StatusText)
	}
}

// drawMessage shows msg in a translucent bar along the bottom edge.
func drawMessage(dst *image.RGBA, msg string, col color.RGBA) {
	b := dst.Bounds()
	metrics := messageFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	bar := image.Rect(b.Min.X, b.Max.Y-ascent-descent-8, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, image.NewUniform(color.RGBA{255, 255, 255, 200}), image.Point{}, draw.Over)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: messageFace}
	d.Dot = fixed.P(bar.Min.X+6, bar.Max.Y-descent-4)
	d.DrawString(msg)
}
