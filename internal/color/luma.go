package color

// Rec. 601 luma weights.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns the Rec. 601 luma of a pixel in [0, 1].
func Luma(r, g, b uint8) float64 {
	return (LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)) / 255
}

// Smoothstep is the cubic Hermite ramp from 0 at edge0 to 1 at edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	if x <= edge0 {
		return 0
	}
	if x >= edge1 {
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	return t * t * (3 - 2*t)
}
