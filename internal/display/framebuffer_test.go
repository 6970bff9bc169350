package display

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestLetterboxKeepsAspect(t *testing.T) {
	cyan := color.RGBA{G: 255, B: 255, A: 255}
	bg := color.RGBA{B: 0x11, A: 255}

	// 1280×720 into 800×800 leaves 175px bars above and below.
	frame := Letterbox(solid(1280, 720, cyan), 800, 800, bg)
	require.Equal(t, image.Rect(0, 0, 800, 800), frame.Bounds())
	assert.Equal(t, bg, frame.RGBAAt(400, 100))
	assert.Equal(t, cyan, frame.RGBAAt(400, 400))
	assert.Equal(t, bg, frame.RGBAAt(400, 700))
}

func TestLetterboxExactFit(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	frame := Letterbox(solid(1280, 720, red), 1920, 1080, nil)
	assert.Equal(t, red, frame.RGBAAt(0, 0))
	assert.Equal(t, red, frame.RGBAAt(1919, 1079))
}

func TestLetterboxEmptySource(t *testing.T) {
	frame := Letterbox(image.NewRGBA(image.Rectangle{}), 10, 10, nil)
	r, g, b, a := frame.At(5, 5).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestShowMissingDevice(t *testing.T) {
	display := NewFramebuffer(filepath.Join(t.TempDir(), "fb9"), nil, nil)
	err := display.Show(context.Background(), solid(4, 4, color.White), time.Millisecond)
	require.Error(t, err)
}
