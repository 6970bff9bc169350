package scenes

import (
	"image"
	"image/color"

	"github.com/tonixchain/brandgen/internal/render"
	"github.com/tonixchain/brandgen/internal/render/layout"
)

// OGImage is the 1200×630 Open-Graph link preview.
type OGImage struct{}

const (
	ogWidth  = 1200
	ogHeight = 630

	ogStars       = 150
	ogStarOpacity = 0.3
	ogLogoSize    = 80

	ogButtonWidth  = 300
	ogButtonHeight = 80
	ogButtonRadius = 40
)

func (OGImage) Name() string              { return "og-image" }
func (OGImage) Filename() string          { return "og-image.png" }
func (OGImage) Size() (width, height int) { return ogWidth, ogHeight }

func (OGImage) Render(env Env) (*image.RGBA, error) {
	const width, height = ogWidth, ogHeight

	canvas, err := backdrop(env, width, height, "cyan", "dark_blue", ogStars, ogStarOpacity)
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

	// Soft glow behind the logo.
	canvas.FillEllipse(layout.CenteredAt(width/2, height/3, 400, 200), color.NRGBA{R: 0, G: 255, B: 255, A: 30})

	canvas.DrawHexLogo(render.Point{X: width / 2, Y: height/2 - 80}, ogLogoSize, render.LogoStyle{
		Fill:       cyan,
		Glyph:      LogoGlyph,
		GlyphFont:  env.TitleFont,
		GlyphColor: white,
		Halo:       env.LogoHalo,
	})

	canvas.DrawText(Title, width/2, height/2+20, render.TextStyle{
		Font: env.TitleFont, Size: 64, Color: cyan, Align: render.TextAlignCenter,
	})
	canvas.DrawText(Slogan, width/2, height/2+100, render.TextStyle{
		Font: env.BodyFont, Size: 36, Color: white, Align: render.TextAlignCenter,
	})

	button := layout.CenterHorizontally(canvas.Bounds(), height/2+180, ogButtonWidth, ogButtonHeight)
	canvas.FillRoundedRect(button, ogButtonRadius, cyan)
	canvas.DrawTextCenteredIn(ButtonLabel, button, render.TextStyle{
		Font: env.TitleFont, Size: 32, Color: darkBg,
	})

	return canvas.Image(), nil
}

// CreateOGImage renders the Open-Graph image.
func CreateOGImage(env Env) (*image.RGBA, error) {
	return OGImage{}.Render(env)
}
