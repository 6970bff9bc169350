package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MeasureText measures the ink box of text as it would be drawn.
func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	text, face := c.prepare(text, style)
	return measure(face, text)
}

// DrawText draws text with the top of its line at y. x is the left edge,
// the center or the right edge of the ink box depending on style.Align.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	text, face := c.prepare(text, style)
	metrics := measure(face, text)

	dotX := x - metrics.Ink.Min.X
	switch style.Align {
	case TextAlignCenter:
		dotX -= metrics.Width / 2
	case TextAlignRight:
		dotX -= metrics.Width
	}
	c.drawString(face, text, dotX, y+metrics.Ascent, style.Color)
	return metrics
}

// DrawTextCenteredIn centers the ink box of text on the center of rect.
func (c *Canvas) DrawTextCenteredIn(text string, rect image.Rectangle, style TextStyle) TextMetrics {
	text, face := c.prepare(text, style)
	metrics := measure(face, text)

	centerX := (rect.Min.X + rect.Max.X) / 2
	centerY := (rect.Min.Y + rect.Max.Y) / 2
	dotX := centerX - (metrics.Ink.Min.X+metrics.Ink.Max.X)/2
	dotY := centerY - (metrics.Ink.Min.Y+metrics.Ink.Max.Y)/2
	c.drawString(face, text, dotX, dotY, style.Color)
	return metrics
}

// FitText returns style with its size reduced in steps of two pixels until
// text fits maxWidth or the size reaches minSize.
func (c *Canvas) FitText(text string, style TextStyle, maxWidth int, minSize float64) TextStyle {
	for style.Size > minSize && c.MeasureText(text, style).Width > maxWidth {
		style.Size -= 2
		if style.Size < minSize {
			style.Size = minSize
		}
	}
	return style
}

func (c *Canvas) prepare(text string, style TextStyle) (string, font.Face) {
	if c.fonts == nil {
		return text, basicfont.Face7x13
	}
	text, _ = c.fonts.Supported(style.Font, text)
	return text, c.fonts.Face(style.Font, style.Size)
}

func (c *Canvas) drawString(face font.Face, text string, dotX, baselineY int, col color.Color) {
	if col == nil {
		col = color.White
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(dotX), float64(baselineY))
}

func measure(face font.Face, text string) TextMetrics {
	bounds, advance := font.BoundString(face, text)
	faceMetrics := face.Metrics()
	ink := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	return TextMetrics{
		Width:      ink.Dx(),
		Height:     ink.Dy(),
		Advance:    advance.Ceil(),
		Ascent:     faceMetrics.Ascent.Ceil(),
		Descent:    faceMetrics.Descent.Ceil(),
		LineHeight: faceMetrics.Height.Ceil(),
		Ink:        ink,
	}
}
