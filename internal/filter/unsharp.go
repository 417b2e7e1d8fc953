package filter

import (
	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// UnsharpSigma is the blur radius used to build the sharpening mask.
const UnsharpSigma = 1.0

// Unsharp sharpens the colour channels of src:
//
//	out = c + amount * (c - blur(c))
//
// where blur is a Gaussian of UnsharpSigma. Alpha is copied unchanged.
func Unsharp(pool *parallel.WorkerPool, src image.Buf, amount float32) image.Buf {
	if amount == 0 {
		return src.Clone()
	}

	blurred := GaussianBlur(pool, src, UnsharpSigma)
	dst := blurred // reuse the allocation; each byte is read before it is written
	stride := src.Stride()

	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for i := y0 * stride; i < y1*stride; i += 4 {
			for c := range 3 {
				orig := float32(src.Pix[i+c])
				dst.Pix[i+c] = clampUint8(orig + amount*(orig-float32(blurred.Pix[i+c])))
			}
			dst.Pix[i+3] = src.Pix[i+3]
		}
	})
	return dst
}
