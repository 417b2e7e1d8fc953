package color

import colorful "github.com/lucasb-eyer/go-colorful"

// ToHSV converts an sRGB triple to hue in degrees [0, 360), saturation and
// value in [0, 1].
func ToHSV(r, g, b uint8) (h, s, v float64) {
	return colorful.Color{R: Unit(r), G: Unit(g), B: Unit(b)}.Hsv()
}

// FromHSV converts hue in degrees with saturation and value in [0, 1] back
// to an sRGB triple. Hue may be any value; it is wrapped into [0, 360).
func FromHSV(h, s, v float64) (r, g, b uint8) {
	c := colorful.Hsv(WrapHue(h), s, v)
	return FromUnit(c.R), FromUnit(c.G), FromUnit(c.B)
}

// WrapHue wraps degrees into [0, 360).
func WrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
