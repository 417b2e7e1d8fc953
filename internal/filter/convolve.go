package filter

import (
	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Convolve3x3 applies k to the R, G and B channels of src and adds bias to
// each result. Alpha is copied unchanged.
func Convolve3x3(pool *parallel.WorkerPool, src image.Buf, k Kernel3, bias float32) image.Buf {
	dst := src.Like()
	width, height := src.Width, src.Height
	pix := src.Pix

	parallel.Rows(pool, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				r, g, b := bias, bias, bias
				for ky := range 3 {
					sy := clampIndex(y+ky-1, height)
					for kx := range 3 {
						sx := clampIndex(x+kx-1, width)
						w := k[ky*3+kx]
						i := (sy*width + sx) * 4
						r += float32(pix[i]) * w
						g += float32(pix[i+1]) * w
						b += float32(pix[i+2]) * w
					}
				}
				i := (y*width + x) * 4
				dst.Pix[i] = clampUint8(r)
				dst.Pix[i+1] = clampUint8(g)
				dst.Pix[i+2] = clampUint8(b)
				dst.Pix[i+3] = pix[i+3]
			}
		}
	})
	return dst
}
