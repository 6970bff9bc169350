package render

import (
	"image"
	"image/color"
	"math"
)

// RadialGradient fills a width×height image with a gradient centered at
// (width/2, height/GradientFocusDivisor). Each pixel's distance to the focus
// is normalized by the canvas diagonal and only GradientWeight of that
// ratio is used as the blend weight, so the end color never dominates.
func RadialGradient(width, height int, start, end color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	centerX := float64(width / 2)
	centerY := float64(height / GradientFocusDivisor)
	maxDist := math.Hypot(float64(width), float64(height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dist := math.Hypot(float64(x)-centerX, float64(y)-centerY)
			weight := math.Min(dist/maxDist, 1.0) * GradientWeight

			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = mix(start.R, end.R, weight)
			img.Pix[offset+1] = mix(start.G, end.G, weight)
			img.Pix[offset+2] = mix(start.B, end.B, weight)
			img.Pix[offset+3] = 0xFF
		}
	}
	return img
}

// mix truncates toward zero, matching an integer cast of the blend.
func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
