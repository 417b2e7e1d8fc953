package color

import (
	"math"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// LUT maps every channel value to a new one.
type LUT [256]uint8

// IdentityLUT returns the table that maps every value to itself.
func IdentityLUT() LUT {
	var l LUT
	for i := range l {
		l[i] = uint8(i)
	}
	return l
}

// BuildLUT tabulates fn over [0, 255]. Results are rounded to the nearest
// integer and clamped to [0, 255].
func BuildLUT(fn func(v float64) float64) LUT {
	var l LUT
	for i := range l {
		l[i] = ClampByte(fn(float64(i)))
	}
	return l
}

// IsIdentity reports whether l maps every value to itself.
func (l *LUT) IsIdentity() bool {
	for i, v := range l {
		if int(v) != i {
			return false
		}
	}
	return true
}

// ApplyLUT maps the R, G and B channels of src through their tables.
// A nil table leaves that channel unchanged. Alpha is copied. When every
// table is the identity the result is a plain copy of src.
func ApplyLUT(pool *parallel.WorkerPool, src image.Buf, r, g, b *LUT) image.Buf {
	id := IdentityLUT()
	if r == nil {
		r = &id
	}
	if g == nil {
		g = &id
	}
	if b == nil {
		b = &id
	}
	if r.IsIdentity() && g.IsIdentity() && b.IsIdentity() {
		return src.Clone()
	}

	dst := src.Like()
	stride := src.Stride()
	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		in := src.Pix[y0*stride : y1*stride]
		out := dst.Pix[y0*stride : y1*stride]
		for i := 0; i+3 < len(in); i += 4 {
			out[i] = r[in[i]]
			out[i+1] = g[in[i+1]]
			out[i+2] = b[in[i+2]]
			out[i+3] = in[i+3]
		}
	})
	return dst
}

// ClampByte rounds v to the nearest integer and clamps it to [0, 255].
func ClampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Unit converts a channel byte to [0, 1].
func Unit(v uint8) float64 {
	return float64(v) / 255
}

// FromUnit converts [0, 1] back to a channel byte, rounding and clamping.
func FromUnit(v float64) uint8 {
	return ClampByte(v * 255)
}
