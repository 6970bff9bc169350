package display

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/tonixchain/brandgen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Framebuffer shows generated images on a Linux framebuffer device, so a
// kiosk or a bare console can preview the assets without a desktop.
type Framebuffer struct {
	Device     string
	Background color.Color
	Logger     Logger
}

func NewFramebuffer(device string, background color.Color, logger Logger) *Framebuffer {
	return &Framebuffer{Device: device, Background: background, Logger: logger}
}

// Show draws img letterboxed onto the device and keeps it there for hold,
// or until ctx is done.
func (f *Framebuffer) Show(ctx context.Context, img image.Image, hold time.Duration) error {
	dev, err := fb.Open(f.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if f.Logger != nil {
		f.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", f.Device, bounds.Dx(), bounds.Dy())
	}

	frame := Letterbox(img, bounds.Dx(), bounds.Dy(), f.Background)
	blit(dev, frame)

	if hold <= 0 {
		return nil
	}
	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Letterbox scales img to fit width×height, keeping its aspect ratio, and
// centers it over background.
func Letterbox(img image.Image, width, height int, background color.Color) *image.RGBA {
	if background == nil {
		background = color.Black
	}
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	src := img.Bounds()
	target := layout.FitInside(frame.Bounds(), src.Dx(), src.Dy())
	if target.Empty() {
		return frame
	}
	xdraw.CatmullRom.Scale(frame, target, img, src, xdraw.Over, nil)
	return frame
}

// blit copies frame pixel by pixel; the device has its own pixel layout.
func blit(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < frame.Bounds().Dy(); y++ {
		for x := 0; x < frame.Bounds().Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
