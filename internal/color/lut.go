// Package color provides the per-channel lookup tables and colour-space
// conversions used by the tone operators.
//
// sRGB ↔ linear conversion goes through precomputed tables, replacing
// math.Pow per pixel with array lookups. HSV conversion is delegated to
// go-colorful.
package color

import "math"

// sRGBToLinearLUT maps an sRGB byte to linear light in [0, 1].
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps linear light quantised to 12 bits back to an sRGB byte.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = float32(decodeSRGB(float64(i) / 255))
	}
	for i := range 4096 {
		s := encodeSRGB(float64(i) / 4095)
		linearToSRGBLUT[i] = uint8(min(max(int(s*255+0.5), 0), 255))
	}
}

func decodeSRGB(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func encodeSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinear converts an sRGB byte to linear light.
//
//	SRGBToLinear(128) // ~0.2159, not 0.5
func SRGBToLinear(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGB converts linear light to an sRGB byte.
// Input outside [0, 1] is clamped.
//
//	LinearToSRGB(0.5) // 188, not 128
func LinearToSRGB(l float32) uint8 {
	if l <= 0 {
		return linearToSRGBLUT[0]
	}
	if l >= 1 {
		return linearToSRGBLUT[4095]
	}
	return linearToSRGBLUT[int(l*4095+0.5)]
}
