package sim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float channels in [0, 1].
type Color struct {
	colorful.Color `yaml:",inline"`
	A              float64 `yaml:"a"`
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// RGB builds an opaque Color.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// Lerp blends c toward to by t, channel by channel including alpha.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		Color: c.Color.BlendRgb(to.Color, t),
		A:     c.A + (to.A-c.A)*t,
	}
}

// Validate rejects non-finite channels.
func (c Color) Validate(field string) error {
	return CheckFinite(field, c.R, c.G, c.B, c.A)
}

// Hex returns the clamped RGB part as #rrggbb.
func (c Color) Hex() string {
	return c.Clamped().Hex()
}
