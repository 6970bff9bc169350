package render

import (
	"image"
	"image/color"
	"math"

	"github.com/tonixchain/brandgen/internal/palette"
)

// HexagonVertices returns the six corners of a regular hexagon of
// circumradius size around center, starting at angle 0 and stepping 60°.
func HexagonVertices(center Point, size float64) []Point {
	points := make([]Point, 6)
	for i := range points {
		angle := math.Pi / 3 * float64(i)
		points[i] = Point{
			X: center.X + size*math.Cos(angle),
			Y: center.Y + size*math.Sin(angle),
		}
	}
	return points
}

// HaloRing is one translucent hexagon drawn behind the logo.
type HaloRing struct {
	Size  float64
	Alpha uint8
}

// HaloRings lists the rings around a hexagon of the given size, outermost
// first. Alpha falls linearly from HaloAlpha at the hexagon edge to zero at
// HaloSpread; rings that end up fully transparent are omitted.
func HaloRings(size float64) []HaloRing {
	var rings []HaloRing
	for spread := HaloSpread; spread > 0; spread -= HaloStep {
		alpha := int(HaloAlpha * (1 - float64(spread)/HaloSpread))
		if alpha <= 0 {
			continue
		}
		rings = append(rings, HaloRing{Size: size + float64(spread), Alpha: uint8(alpha)})
	}
	return rings
}

// LogoStyle configures DrawHexLogo.
type LogoStyle struct {
	Fill       color.RGBA
	Glyph      string
	GlyphFont  string
	GlyphColor color.Color
	Halo       bool
}

// DrawHexLogo draws the hexagon mark with its glyph centered inside.
func (c *Canvas) DrawHexLogo(center Point, size float64, style LogoStyle) {
	if style.Halo {
		for _, ring := range HaloRings(size) {
			c.FillPolygon(HexagonVertices(center, ring.Size), palette.WithAlpha(style.Fill, ring.Alpha))
		}
	}
	c.FillPolygon(HexagonVertices(center, size), style.Fill)

	if style.Glyph == "" {
		return
	}
	box := image.Rect(
		int(center.X-size), int(center.Y-size),
		int(center.X+size), int(center.Y+size),
	)
	c.DrawTextCenteredIn(style.Glyph, box, TextStyle{
		Font:  style.GlyphFont,
		Size:  math.Floor(size * LogoGlyphScale),
		Color: style.GlyphColor,
	})
}
