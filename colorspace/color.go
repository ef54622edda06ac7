package colorspace

import (
	"fmt"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from the terminal layer
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Hex returns the lowercase #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb (case-insensitive, leading # optional)
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB{r, g, b}, nil
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (c RGB) Max(src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// Colorful converts to a go-colorful color for perceptual-space math
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts back from go-colorful, clamping out-of-gamut values
func FromColorful(cf colorful.Color) RGB {
	r, g, b := cf.Clamped().RGB255()
	return RGB{r, g, b}
}

// RandomVibrant returns a fully saturated color with a random hue,
// used to seed swarm particles with distinct vivid colors
func RandomVibrant(rng *rand.Rand) RGB {
	h := rng.Float64() * 360.0
	l := 0.45 + rng.Float64()*0.2
	return HSLToRGB(h, 1.0, l)
}

// Sample is an immutable color observation: the raw channels plus its
// derived hex and HSL forms, produced by galaxy sampling or palette fetch
type Sample struct {
	Color RGB
	Hex   string
	H     float64 // degrees [0,360)
	S     float64 // [0,1]
	L     float64 // [0,1]
}

// NewSample derives the hex and HSL forms once at construction
func NewSample(c RGB) Sample {
	h, s, l := RGBToHSL(c)
	return Sample{Color: c, Hex: c.Hex(), H: h, S: s, L: l}
}
