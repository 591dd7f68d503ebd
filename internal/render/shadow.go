// Package render post-processes exported board images.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow placed under an exported board.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns the shadow used by -shadow when only a radius
// is given.
func DefaultShadowOptions(radius int) ShadowOptions {
	return ShadowOptions{
		Radius:  radius,
		Offset:  image.Pt(radius/2, radius/2),
		Opacity: 0.5,
	}
}

// WithShadow returns img on a transparent canvas large enough to hold a
// blurred copy of its alpha channel shifted by opts.Offset. The result has a
// zero origin; img's top-left corner ends up at the returned point.
func WithShadow(img *image.RGBA, opts ShadowOptions) (*image.RGBA, image.Point) {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img, image.Point{}
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	src := img.Bounds()
	spread := src.Inset(-radius)
	shadow := spread.Add(opts.Offset)
	all := src.Union(shadow)
	origin := all.Min

	mask := image.NewGray(spread.Sub(spread.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-spread.Min.X, y-spread.Min.Y, color.Gray{Y: a})
			}
		}
	}
	boxBlur(mask, radius)

	dst := image.NewRGBA(all.Sub(origin))
	tint := image.NewUniform(color.NRGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, shadow.Sub(origin), tint, image.Point{}, mask, image.Point{}, draw.Over)
	at := src.Min.Sub(origin)
	draw.Draw(dst, src.Sub(origin), img, src.Min, draw.Over)
	return dst, at
}

// boxBlur blurs g in place with a (2r+1)-wide box, horizontally then vertically.
func boxBlur(g *image.Gray, r int) {
	if r <= 0 {
		return
	}
	w, h := g.Rect.Dx(), g.Rect.Dy()
	line := make([]uint8, max(w, h))
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w]
		blurLine(row, line[:w], r)
	}
	col := make([]uint8, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = g.Pix[y*g.Stride+x]
		}
		blurLine(col, line[:h], r)
		for y := 0; y < h; y++ {
			g.Pix[y*g.Stride+x] = col[y]
		}
	}
}

// blurLine replaces p with its running mean over a window of radius r,
// clamped at the ends. scratch must be as long as p.
func blurLine(p, scratch []uint8, r int) {
	n := len(p)
	copy(scratch, p)
	sum := 0
	lo, hi := 0, -1
	for i := 0; i < n; i++ {
		for hi < min(i+r, n-1) {
			hi++
			sum += int(scratch[hi])
		}
		for lo < max(i-r, 0) {
			sum -= int(scratch[lo])
			lo++
		}
		p[i] = uint8(sum / (hi - lo + 1))
	}
}
