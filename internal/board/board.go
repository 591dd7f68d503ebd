// Package board assembles a drawable board: a raster host with the control
// and paint canvases, their surfaces and the interaction controller.
package board

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/example/dragboard/internal/app"
	"github.com/example/dragboard/internal/raster"
	"github.com/example/dragboard/internal/surface"
	"github.com/example/dragboard/internal/theme"
)

// Board is a ready-to-use pair of layers driven by an App.
type Board struct {
	Theme   *theme.Theme
	Host    *raster.Host
	Control *raster.Canvas
	Paint   *raster.Canvas
	App     *app.App
}

// New builds a width x height board styled by th. Extra options are applied
// after the theme styles.
func New(width, height int, th *theme.Theme, opts ...app.Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board: invalid size %dx%d", width, height)
	}
	if th == nil {
		th = theme.Default()
	}
	host := raster.NewHost(width, height, th.Stroke, raster.ControlID, raster.PaintID)
	cc, err := host.Acquire(raster.ControlID)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	pc, err := host.Acquire(raster.PaintID)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	all := append([]app.Option{
		app.WithButtonStyle(th.ButtonStyle()),
		app.WithShapeStyle(th.ShapeStyle()),
	}, opts...)
	a := app.New(
		surface.New(raster.ControlID, cc, width, height),
		surface.New(raster.PaintID, pc, width, height),
		all...,
	)
	a.Initialize()
	a.Bind()

	return &Board{Theme: th, Host: host, Control: cc, Paint: pc, App: a}, nil
}

// Size returns the board dimensions.
func (b *Board) Size() (width, height int) { return b.Paint.Width(), b.Paint.Height() }

// Emit forwards a pointer event to the control surface.
func (b *Board) Emit(ev surface.PointerEvent) { b.App.Control().Emit(ev) }

// Image flattens the paint layer, and optionally the control layer on top,
// over the theme's canvas color.
func (b *Board) Image(withControl bool) *image.RGBA {
	if withControl {
		return raster.Composite(b.Theme.Canvas, b.Paint, b.Control)
	}
	return raster.Composite(b.Theme.Canvas, b.Paint)
}

// WritePNG encodes Image(withControl) to w.
func (b *Board) WritePNG(w io.Writer, withControl bool) error {
	return png.Encode(w, b.Image(withControl))
}

// SavePNG writes the board to path, creating parent directories.
func (b *Board) SavePNG(path string, withControl bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := b.WritePNG(f, withControl); err != nil {
		_ = f.Close()
		return fmt.Errorf("board: encode %s: %w", path, err)
	}
	return f.Close()
}
