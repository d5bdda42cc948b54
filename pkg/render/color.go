// pkg/render/color.go
package render

import "image/color"

// FadeColor scales a color down to the given alpha. Ebiten expects
// premultiplied alpha, so the RGB channels shrink together with A.
func FadeColor(c color.RGBA, alpha uint8) color.RGBA {
	k := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: alpha,
	}
}

// HealthColor maps the remaining health fraction to a mob tint:
// bright red at full health, dull green near death.
func HealthColor(frac float64) color.RGBA {
	return color.RGBA{
		R: uint8(220*frac + 30),
		G: uint8(80 * (1 - frac)),
		B: 70,
		A: 255,
	}
}
