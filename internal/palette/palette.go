package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a color string is not a 6 digit hex triple.
var ErrInvalidHex = errors.New("invalid hex color")

// Palette is the brand color set. Values are hex strings as designers hand them over.
type Palette struct {
	Cyan     string
	Blue     string
	DarkBlue string
	Purple   string
	DarkBg   string
	White    string
	NeonCyan string
	NeonBlue string
}

// Brand is the Tonix Chain palette.
var Brand = Palette{
	Cyan:     "#00ffff",
	Blue:     "#0088ff",
	DarkBlue: "#000055",
	Purple:   "#5500ff",
	DarkBg:   "#000011",
	White:    "#ffffff",
	NeonCyan: "#00ffff",
	NeonBlue: "#0088ff",
}

// Names returns the semantic color names in a stable order.
func (p Palette) Names() []string {
	return []string{"cyan", "blue", "dark_blue", "purple", "dark_bg", "white", "neon_cyan", "neon_blue"}
}

// Lookup returns the hex value registered under a semantic name.
func (p Palette) Lookup(name string) (string, bool) {
	switch name {
	case "cyan":
		return p.Cyan, true
	case "blue":
		return p.Blue, true
	case "dark_blue":
		return p.DarkBlue, true
	case "purple":
		return p.Purple, true
	case "dark_bg":
		return p.DarkBg, true
	case "white":
		return p.White, true
	case "neon_cyan":
		return p.NeonCyan, true
	case "neon_blue":
		return p.NeonBlue, true
	}
	return "", false
}

// RGBA resolves a semantic name to an opaque color.
func (p Palette) RGBA(name string) (color.RGBA, error) {
	hex, ok := p.Lookup(name)
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown palette color %q", name)
	}
	return HexToRGB(hex)
}

// MustRGBA is RGBA for names known at compile time.
func (p Palette) MustRGBA(name string) color.RGBA {
	c, err := p.RGBA(name)
	if err != nil {
		panic(err)
	}
	return c
}

// HexToRGB parses "#rrggbb" or "rrggbb" into an opaque color.
func HexToRGB(hex string) (color.RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}

// RGBToHex formats the color channels as lowercase "#rrggbb". Alpha is ignored.
func RGBToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha replaced. The result is non-premultiplied.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
