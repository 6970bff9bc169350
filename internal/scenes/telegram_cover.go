package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tonixchain/brandgen/internal/render"
	"github.com/tonixchain/brandgen/internal/render/layout"
)

// TelegramCover is the 1280×720 channel cover: logo on the left, title and
// slogan to its right.
type TelegramCover struct{}

const (
	coverWidth  = 1280
	coverHeight = 720

	coverStars       = 300
	coverStarOpacity = 0.4
	coverLogoSize    = 150

	coverMargin = 40
	coverQRSize = 160
)

func (TelegramCover) Name() string              { return "telegram-cover" }
func (TelegramCover) Filename() string          { return "telegram-cover.png" }
func (TelegramCover) Size() (width, height int) { return coverWidth, coverHeight }

func (TelegramCover) Render(env Env) (*image.RGBA, error) {
	const width, height = coverWidth, coverHeight

	canvas, err := backdrop(env, width, height, "purple", "blue", coverStars, coverStarOpacity)
	if err != nil {
		return nil, err
	}
	colors := swatch{palette: env.Palette}
	cyan := colors.get("cyan")
	white := colors.get("white")
	darkBg := colors.get("dark_bg")
	if colors.err != nil {
		return nil, colors.err
	}

	canvas.FillEllipse(layout.CenteredAt(width/4, height/2, 300, 300), color.NRGBA{R: 85, G: 0, B: 255, A: 40})

	canvas.DrawHexLogo(render.Point{X: width / 4, Y: height / 2}, coverLogoSize, render.LogoStyle{
		Fill:       cyan,
		Glyph:      LogoGlyph,
		GlyphFont:  env.TitleFont,
		GlyphColor: white,
		Halo:       env.LogoHalo,
	})

	titleX := width/4 + coverLogoSize + 60
	titleY := height/2 - 120
	maxTextWidth := width - titleX - coverMargin

	titleStyle := canvas.FitText(Title, render.TextStyle{
		Font: env.TitleFont, Size: 96, Color: cyan,
	}, maxTextWidth, 48)
	canvas.DrawText(Title, titleX, titleY, titleStyle)

	sloganStyle := canvas.FitText(Slogan, render.TextStyle{
		Font: env.BodyFont, Size: 48, Color: white,
	}, maxTextWidth, 24)
	canvas.DrawText(Slogan, titleX, titleY+120, sloganStyle)

	if env.QRURL != "" {
		qr, err := render.GenerateQRCodeImage(env.QRURL, coverQRSize, darkBg, white)
		if err != nil {
			return nil, fmt.Errorf("qr code for %q: %w", env.QRURL, err)
		}
		spot := layout.AnchorBottomRight(canvas.Bounds(), qr.Bounds().Dx(), qr.Bounds().Dy(), coverMargin)
		canvas.DrawImage(qr, spot.Min.X, spot.Min.Y)
	}

	return canvas.Image(), nil
}

// CreateTelegramCover renders the Telegram cover.
func CreateTelegramCover(env Env) (*image.RGBA, error) {
	return TelegramCover{}.Render(env)
}
