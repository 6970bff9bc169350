package scenes

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/tonixchain/brandgen/internal/assets"
	"github.com/tonixchain/brandgen/internal/palette"
	"github.com/tonixchain/brandgen/internal/render"
)

// Brand copy. The emoji are kept as written; fonts without them drop them.
const (
	Title       = "TONIX CHAIN"
	Slogan      = "ЛОТЕРЕЯ БУДУЩЕГО НА TON 💎"
	ButtonLabel = "НАЧАТЬ ИГРУ 💎"
	LogoGlyph   = "T"
)

var ErrUnknownScene = errors.New("unknown scene")

// Env carries everything a scene needs to draw.
type Env struct {
	Fonts   render.FontSource
	Rand    *rand.Rand
	Palette palette.Palette

	TitleFont string
	BodyFont  string

	// LogoHalo draws the translucent rings around the hexagon mark.
	LogoHalo bool
	// QRURL, when set, puts a QR code for it on scenes that have room.
	QRURL string
}

// DefaultEnv returns the stock brand environment drawing with fonts and rng.
func DefaultEnv(fonts render.FontSource, rng *rand.Rand) Env {
	return Env{
		Fonts:     fonts,
		Rand:      rng,
		Palette:   palette.Brand,
		TitleFont: assets.FontBold,
		BodyFont:  assets.FontRegular,
		LogoHalo:  true,
	}
}

// Scene is one promotional image.
type Scene interface {
	Name() string
	Filename() string
	Size() (width int, height int)
	Render(env Env) (*image.RGBA, error)
}

// All returns the scenes in generation order.
func All() []Scene {
	return []Scene{OGImage{}, TelegramCover{}}
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, error) {
	for _, scene := range All() {
		if scene.Name() == name {
			return scene, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// backdrop builds the shared background: a radial gradient from start to
// end with a starfield blended over it at starOpacity.
func backdrop(env Env, width, height int, start, end string, starCount int, starOpacity float64) (*render.Canvas, error) {
	if env.Rand == nil {
		return nil, errors.New("scene environment has no random source")
	}
	colors := swatch{palette: env.Palette}
	startRGB := colors.get(start)
	endRGB := colors.get(end)
	darkBg := colors.get("dark_bg")
	if colors.err != nil {
		return nil, colors.err
	}

	gradient := render.RadialGradient(width, height, startRGB, endRGB)
	stars := render.ScatterStars(env.Rand, width, height, starCount)
	starfield := render.StarfieldImage(width, height, stars, darkBg)
	return render.NewCanvasFromImage(render.Blend(gradient, starfield, starOpacity), env.Fonts), nil
}

// swatch resolves palette names and keeps the first error.
type swatch struct {
	palette palette.Palette
	err     error
}

func (s *swatch) get(name string) color.RGBA {
	if s.err != nil {
		return color.RGBA{}
	}
	c, err := s.palette.RGBA(name)
	if err != nil {
		s.err = err
	}
	return c
}
