package image

import "math"

// Interpolation defines how a Buf is sampled between pixel centres.
type Interpolation uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest Interpolation = iota

	// InterpBilinear blends the 4 neighbouring pixels with linear weights.
	InterpBilinear

	// InterpBicubic blends a 4x4 neighbourhood with Catmull-Rom weights.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Sample samples b at continuous pixel coordinates (x, y).
//
// Pixel (i, j) covers [i, i+1) x [j, j+1), so its centre is at
// (i+0.5, j+0.5). Neighbours outside the buffer are clamped to the edge.
func Sample(b Buf, x, y float64, mode Interpolation) (r, g, bl, a byte) {
	switch mode {
	case InterpNearest:
		return SampleNearest(b, x, y)
	case InterpBicubic:
		return SampleBicubic(b, x, y)
	default:
		return SampleBilinear(b, x, y)
	}
}

// SampleNearest returns the pixel containing (x, y).
func SampleNearest(b Buf, x, y float64) (r, g, bl, a byte) {
	px := clamp(int(math.Floor(x)), 0, b.Width-1)
	py := clamp(int(math.Floor(y)), 0, b.Height-1)
	return b.At(px, py)
}

// SampleBilinear interpolates between the 4 pixel centres around (x, y).
func SampleBilinear(b Buf, x, y float64) (r, g, bl, a byte) {
	fx := x - 0.5
	fy := y - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, b.Width-1)
	y1 := clamp(y0+1, 0, b.Height-1)
	x0 = clamp(x0, 0, b.Width-1)
	y0 = clamp(y0, 0, b.Height-1)

	i00 := b.Offset(x0, y0)
	i10 := b.Offset(x1, y0)
	i01 := b.Offset(x0, y1)
	i11 := b.Offset(x1, y1)

	var out [4]byte
	for c := range 4 {
		v := lerp2D(float64(b.Pix[i00+c]), float64(b.Pix[i10+c]),
			float64(b.Pix[i01+c]), float64(b.Pix[i11+c]), tx, ty)
		out[c] = roundByte(v)
	}
	return out[0], out[1], out[2], out[3]
}

// SampleBicubic interpolates a 4x4 neighbourhood with Catmull-Rom splines.
func SampleBicubic(b Buf, x, y float64) (r, g, bl, a byte) {
	fx := x - 0.5
	fy := y - 0.5

	ix := int(math.Floor(fx))
	iy := int(math.Floor(fy))
	tx := fx - float64(ix)
	ty := fy - float64(iy)

	var wx, wy [4]float64
	for k := range 4 {
		wx[k] = cubicWeight(tx - float64(k-1))
		wy[k] = cubicWeight(ty - float64(k-1))
	}

	var sum [4]float64
	for dy := range 4 {
		py := clamp(iy+dy-1, 0, b.Height-1)
		for dx := range 4 {
			px := clamp(ix+dx-1, 0, b.Width-1)
			w := wx[dx] * wy[dy]
			i := b.Offset(px, py)
			for c := range 4 {
				sum[c] += float64(b.Pix[i+c]) * w
			}
		}
	}
	return roundByte(sum[0]), roundByte(sum[1]), roundByte(sum[2]), roundByte(sum[3])
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// roundByte rounds v to the nearest byte, saturating at 0 and 255.
func roundByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// cubicWeight is the Catmull-Rom kernel (Mitchell-Netravali B=0, C=0.5).
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}
