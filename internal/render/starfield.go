package render

import (
	"image"
	"image/color"
	"math/rand"
)

// Star is one starfield dot.
type Star struct {
	X, Y       int
	Radius     int
	Brightness uint8
}

// ScatterStars places count stars uniformly over [0,width]×[0,height].
// Radius is 1 or 2 and brightness lies in [StarBrightnessMin, StarBrightnessMax].
// The same rng state always yields the same stars.
func ScatterStars(rng *rand.Rand, width, height, count int) []Star {
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, Star{
			X:          rng.Intn(width + 1),
			Y:          rng.Intn(height + 1),
			Brightness: uint8(StarBrightnessMin + rng.Intn(StarBrightnessMax-StarBrightnessMin+1)),
			Radius:     1 + rng.Intn(2),
		})
	}
	return stars
}

// DrawStars fills each star as a gray circle.
func (c *Canvas) DrawStars(stars []Star) {
	for _, star := range stars {
		gray := color.RGBA{R: star.Brightness, G: star.Brightness, B: star.Brightness, A: 0xFF}
		c.FillCircle(float64(star.X), float64(star.Y), float64(star.Radius), gray)
	}
}

// StarfieldImage renders stars over an opaque background.
func StarfieldImage(width, height int, stars []Star, background color.Color) image.Image {
	canvas := NewCanvas(width, height, nil)
	canvas.Fill(background)
	canvas.DrawStars(stars)
	return canvas.Image()
}
