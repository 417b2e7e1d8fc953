package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// BilateralParams derives the window and the two Gaussian widths from a
// denoise strength in [0, 1].
type BilateralParams struct {
	Radius         int
	SpatialSigma   float32
	IntensitySigma float32
}

// BilateralFor maps strength in [0, 1] to filter parameters: the window
// grows from 1 to 4 pixels and the range sigma from 10 to 40 levels.
func BilateralFor(strength float32) BilateralParams {
	return BilateralParams{
		Radius:         int(strength*3 + 1),
		SpatialSigma:   strength*2 + 0.5,
		IntensitySigma: strength*30 + 10,
	}
}

// Bilateral smooths the colour channels of src while preserving edges:
// each neighbour is weighted by its distance and by the mean absolute
// difference between its colour and the centre pixel. Alpha is copied
// unchanged.
func Bilateral(pool *parallel.WorkerPool, src image.Buf, p BilateralParams) image.Buf {
	dst := src.Like()
	width, height := src.Width, src.Height
	pix := src.Pix
	radius := p.Radius

	spatialDen := 2 * p.SpatialSigma * p.SpatialSigma
	rangeDen := 2 * p.IntensitySigma * p.IntensitySigma

	// Spatial weights only depend on the offset.
	side := 2*radius + 1
	spatial := make([]float32, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float32(dx*dx + dy*dy)
			spatial[(dy+radius)*side+dx+radius] = math32.Exp(-d2 / spatialDen)
		}
	}

	parallel.Rows(pool, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				ci := (y*width + x) * 4
				cr := float32(pix[ci])
				cg := float32(pix[ci+1])
				cb := float32(pix[ci+2])

				var sr, sg, sb, wsum float32
				for dy := -radius; dy <= radius; dy++ {
					sy := clampIndex(y+dy, height)
					for dx := -radius; dx <= radius; dx++ {
						sx := clampIndex(x+dx, width)
						ni := (sy*width + sx) * 4
						nr := float32(pix[ni])
						ng := float32(pix[ni+1])
						nb := float32(pix[ni+2])

						diff := (math32.Abs(nr-cr) + math32.Abs(ng-cg) + math32.Abs(nb-cb)) / 3
						w := spatial[(dy+radius)*side+dx+radius] * math32.Exp(-(diff*diff)/rangeDen)

						sr += nr * w
						sg += ng * w
						sb += nb * w
						wsum += w
					}
				}

				dst.Pix[ci] = clampUint8(sr / wsum)
				dst.Pix[ci+1] = clampUint8(sg / wsum)
				dst.Pix[ci+2] = clampUint8(sb / wsum)
				dst.Pix[ci+3] = pix[ci+3]
			}
		}
	})
	return dst
}
