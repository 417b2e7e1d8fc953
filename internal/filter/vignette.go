package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Vignette darkens the colour channels of src toward the corners.
//
// radius in [0, 1] is the fraction of the centre-to-corner distance left
// untouched; strength in [0, 1] is the darkening applied at the corners.
// Between the two the factor falls off along a smoothstep curve. Alpha is
// copied unchanged.
func Vignette(pool *parallel.WorkerPool, src image.Buf, strength, radius float32) image.Buf {
	dst := src.Like()
	width, height := src.Width, src.Height

	cx := float32(width) / 2
	cy := float32(height) / 2
	maxDist := math32.Sqrt(cx*cx + cy*cy)
	inner := maxDist * radius
	span := maxDist - inner

	parallel.Rows(pool, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			dy := float32(y) + 0.5 - cy
			for x := range width {
				dx := float32(x) + 0.5 - cx
				d := math32.Sqrt(dx*dx + dy*dy)

				factor := float32(1)
				if d > inner && span > 0 {
					t := min((d-inner)/span, 1)
					factor = 1 - strength*t*t*(3-2*t)
				}

				i := (y*width + x) * 4
				dst.Pix[i] = clampUint8(float32(src.Pix[i]) * factor)
				dst.Pix[i+1] = clampUint8(float32(src.Pix[i+1]) * factor)
				dst.Pix[i+2] = clampUint8(float32(src.Pix[i+2]) * factor)
				dst.Pix[i+3] = src.Pix[i+3]
			}
		}
	})
	return dst
}
