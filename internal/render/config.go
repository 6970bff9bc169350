package render

// Shared drawing constants.
const (
	// GradientWeight caps how far a radial gradient travels from its start
	// color toward its end color at the far corner.
	GradientWeight = 0.3

	// GradientFocusDivisor places the gradient focus at height/3.
	GradientFocusDivisor = 3

	// StarBrightnessMin and StarBrightnessMax bound star gray levels.
	StarBrightnessMin = 100
	StarBrightnessMax = 255

	// LogoGlyphScale sizes the logo glyph relative to the hexagon radius.
	LogoGlyphScale = 0.8

	// HaloSpread is how far the outermost halo ring sits beyond the hexagon.
	HaloSpread = 8
	// HaloStep is the spacing between halo rings.
	HaloStep = 4
	// HaloAlpha is the alpha a ring would have at zero distance.
	HaloAlpha = 50
)
