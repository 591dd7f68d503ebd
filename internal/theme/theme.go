package theme

import (
	"image/color"

	"github.com/example/dragboard/internal/raster"
	"github.com/example/dragboard/internal/scene"
)

// Theme defines the color palette for the drawing window.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // Behind the canvas when the window is letterboxed
	Canvas     color.RGBA // Paint layer backdrop in the window and in exports
	StatusText color.RGBA

	// Shapes
	Stroke    color.RGBA // Outline and preview color
	ShapeFill color.RGBA // Fill for committed rectangles; transparent means outline only

	// Buttons
	ButtonBackground color.RGBA
	ButtonText       color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Canvas:           color.RGBA{255, 255, 255, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		Stroke:           color.RGBA{0, 0, 0, 255},
		ShapeFill:        color.RGBA{0, 0, 0, 0},
		ButtonBackground: color.RGBA{200, 200, 200, 255},
		ButtonText:       color.RGBA{0, 0, 0, 255},
	}
}

// ButtonStyle converts the button palette for scene buttons.
func (t *Theme) ButtonStyle() scene.ButtonStyle {
	return scene.ButtonStyle{
		Background: raster.Hex(t.ButtonBackground),
		Label:      raster.Hex(t.ButtonText),
	}
}

// ShapeStyle is the style committed rectangles are drawn with.
func (t *Theme) ShapeStyle() scene.Style {
	if t.ShapeFill.A == 0 {
		return scene.Style{}
	}
	return scene.Style{Filled: true, FillColor: raster.Hex(t.ShapeFill)}
}
