package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// FontSource resolves faces for text styles. fonts.Resolver implements it.
type FontSource interface {
	Face(name string, sizePx float64) font.Face
	Supported(name, text string) (string, []rune)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y (the top of the
// line's ascent). For X, Align controls how x is interpreted.
type TextStyle struct {
	Font  string
	Size  float64 // pixels
	Color color.Color
	Align TextAlign
}

// TextMetrics describes a measured string. Width and Height are the ink
// bounding box; Ink is that box relative to the pen origin on the baseline.
type TextMetrics struct {
	Width      int
	Height     int
	Advance    int
	Ascent     int
	Descent    int
	LineHeight int
	Ink        image.Rectangle
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}
