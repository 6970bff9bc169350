package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Canvas is an offscreen RGBA bitmap with the drawing primitives the brand
// scenes are built from. Shapes are anti-aliased and alpha-composited over
// what is already there.
type Canvas struct {
	dc    *gg.Context
	fonts FontSource
}

// NewCanvas returns a fully transparent canvas.
func NewCanvas(width, height int, fonts FontSource) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height), fonts: fonts}
}

// NewCanvasFromImage copies img into a new canvas of the same size.
func NewCanvasFromImage(img image.Image, fonts FontSource) *Canvas {
	return &Canvas{dc: gg.NewContextForImage(img), fonts: fonts}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width int, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// Image returns the backing bitmap. Later drawing mutates it.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// Fill paints the whole canvas with col, replacing its contents.
func (c *Canvas) Fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// FillEllipse fills the ellipse inscribed in rect.
func (c *Canvas) FillEllipse(rect image.Rectangle, col color.Color) {
	if rect.Empty() {
		return
	}
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	c.dc.DrawEllipse(cx, cy, float64(rect.Dx())/2, float64(rect.Dy())/2)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillCircle fills a circle of radius r around (x, y).
func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillPolygon fills the closed polygon through points.
func (c *Canvas) FillPolygon(points []Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.dc.NewSubPath()
	for i, p := range points {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
			continue
		}
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillRoundedRect fills rect with corners of the given radius.
func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius float64, col color.Color) {
	if rect.Empty() {
		return
	}
	c.dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), radius)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// DrawImage composites img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// Blend mixes top over base at the given opacity: base*(1-opacity) + top*opacity.
// Both images should have the same size; the result starts at (0, 0).
func Blend(base, top image.Image, opacity float64) *image.NRGBA {
	return imaging.Overlay(base, top, image.Point{}, opacity)
}
