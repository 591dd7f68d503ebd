package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce  sync.Once
	fontErr   error
	regular   *opentype.Font
	faceCache sync.Map // map[int]font.Face
)

// faceForSize returns the Go regular face at sizePx pixels.
func faceForSize(sizePx int) (font.Face, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %d must be positive", sizePx)
	}
	fontOnce.Do(func() {
		regular, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse font: %w", fontErr)
	}
	if face, ok := faceCache.Load(sizePx); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := faceCache.LoadOrStore(sizePx, face)
	return actual.(font.Face), nil
}
