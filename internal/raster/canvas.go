// Package raster renders scenes into RGBA images using gg.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/fogleman/gg"

	"github.com/example/dragboard/internal/scene"
)

// Canvas is a scene.Canvas drawing into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	dc     *gg.Context
	stroke gg.Pattern
	fill   color.RGBA
}

var _ scene.Canvas = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size. Outlines are
// drawn with stroke; the fill color starts black.
func NewCanvas(width, height int, stroke color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		img:    img,
		dc:     gg.NewContextForRGBA(img),
		stroke: gg.NewSolidPattern(stroke),
		fill:   color.RGBA{A: 255},
	}
	c.dc.SetLineWidth(1)
	c.dc.SetStrokeStyle(c.stroke)
	c.dc.SetFillStyle(gg.NewSolidPattern(c.fill))
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// RGBA exposes the backing image. It is only valid until the next draw.
func (c *Canvas) RGBA() *image.RGBA { return c.img }

// StrokeRect outlines the rectangle with a 1px line. The path is shifted to
// pixel centers so integer edges stay crisp.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x+0.5, y+0.5, w, h)
	c.dc.Stroke()
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// ClearRect resets the covered pixels to transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) DrawText(text string, x, y float64, sizePx int) {
	face, err := faceForSize(sizePx)
	if err != nil {
		log.Printf("draw text %q: %v", text, err)
		return
	}
	c.dc.SetFontFace(face)
	// gg paints text with its current color, which also replaces the stroke.
	c.dc.SetColor(c.fill)
	c.dc.DrawString(text, x, y)
	c.dc.SetStrokeStyle(c.stroke)
}

func (c *Canvas) SetDashPattern(segments []int) {
	dashes := make([]float64, len(segments))
	for i, s := range segments {
		dashes[i] = float64(s)
	}
	c.dc.SetDash(dashes...)
}

func (c *Canvas) ResetDashPattern() {
	c.dc.SetDash()
}

// SetFillColor changes the fill color. Unknown colors are logged and leave
// the fill unchanged.
func (c *Canvas) SetFillColor(s string) {
	col, err := ParseColor(s)
	if err != nil {
		log.Printf("set fill color: %v", err)
		return
	}
	c.fill = col
	c.dc.SetFillStyle(gg.NewSolidPattern(col))
}
