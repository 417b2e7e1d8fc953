package filter

import (
	"github.com/gogpu/retouch/internal/color"
	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// ColorMatrix is a 4x5 colour transform in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// Channels are in [0, 255] during the transform and clamped afterwards.
// The input is non-premultiplied, so no alpha division is involved.
type ColorMatrix [20]float32

// IdentityMatrix passes colours through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// GrayscaleMatrix replaces R, G and B with Rec. 601 luma.
func GrayscaleMatrix() ColorMatrix {
	const r, g, b = color.LumaR, color.LumaG, color.LumaB
	return ColorMatrix{
		r, g, b, 0, 0,
		r, g, b, 0, 0,
		r, g, b, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SepiaTintMatrix scales a grey value into a warm brown. Applied after
// GrayscaleMatrix it reproduces the classic sepia matrix on grey input.
func SepiaTintMatrix() ColorMatrix {
	return ColorMatrix{
		1.351, 0, 0, 0, 0,
		0, 1.203, 0, 0, 0,
		0, 0, 0.937, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += next[row*5+k] * m[k*5+col]
			}
			out[row*5+col] = sum
		}
		out[row*5+4] = next[row*5]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return out
}

// ApplyMatrix transforms every pixel of src with m.
func ApplyMatrix(pool *parallel.WorkerPool, src image.Buf, m ColorMatrix) image.Buf {
	dst := src.Like()
	stride := src.Stride()

	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for i := y0 * stride; i < y1*stride; i += 4 {
			r := float32(src.Pix[i])
			g := float32(src.Pix[i+1])
			b := float32(src.Pix[i+2])
			a := float32(src.Pix[i+3])

			dst.Pix[i] = clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
			dst.Pix[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
			dst.Pix[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
			dst.Pix[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
		}
	})
	return dst
}
