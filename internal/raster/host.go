package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"
)

// Well known surface ids.
const (
	ControlID = "control-canvas"
	PaintID   = "paint-canvas"
)

// ErrSurfaceNotFound is returned when a surface id is unknown to the host.
var ErrSurfaceNotFound = errors.New("surface not found")

// Host holds the named canvases a program renders into.
type Host struct {
	order    []string
	canvases map[string]*Canvas
}

// NewHost creates one canvas of the given size per id.
func NewHost(width, height int, stroke color.Color, ids ...string) *Host {
	h := &Host{canvases: make(map[string]*Canvas, len(ids))}
	for _, id := range ids {
		if _, ok := h.canvases[id]; ok {
			continue
		}
		h.order = append(h.order, id)
		h.canvases[id] = NewCanvas(width, height, stroke)
	}
	return h
}

// Acquire returns the canvas registered under id.
func (h *Host) Acquire(id string) (*Canvas, error) {
	c, ok := h.canvases[id]
	if !ok {
		known := append([]string(nil), h.order...)
		sort.Strings(known)
		return nil, fmt.Errorf("acquire %q (have %v): %w", id, known, ErrSurfaceNotFound)
	}
	return c, nil
}

// Composite flattens the given layers, first at the bottom, over an opaque
// background.
func Composite(bg color.Color, layers ...*Canvas) *image.RGBA {
	var bounds image.Rectangle
	for _, l := range layers {
		bounds = bounds.Union(l.RGBA().Bounds())
	}
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(bg), image.Point{}, draw.Src)
	for _, l := range layers {
		draw.Draw(out, l.RGBA().Bounds(), l.RGBA(), l.RGBA().Bounds().Min, draw.Over)
	}
	return out
}
