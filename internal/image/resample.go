package image

import (
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/gogpu/retouch/internal/parallel"
)

// Resample scales b to width x height by point-sampling each destination
// pixel centre with mode. It does not prefilter, so strong downscales alias;
// use ResampleCatmullRom or ResampleLanczos for those.
func Resample(pool *parallel.WorkerPool, b Buf, width, height int, mode Interpolation) Buf {
	dst := Buf{Pix: make([]byte, width*height*BytesPerPixel), Width: width, Height: height}
	sx := float64(b.Width) / float64(width)
	sy := float64(b.Height) / float64(height)

	parallel.Rows(pool, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			srcY := (float64(y) + 0.5) * sy
			for x := range width {
				srcX := (float64(x) + 0.5) * sx
				i := dst.Offset(x, y)
				p := dst.Pix[i : i+4 : i+4]
				p[0], p[1], p[2], p[3] = Sample(b, srcX, srcY, mode)
			}
		}
	})
	return dst
}

// ResampleCatmullRom scales b with the Catmull-Rom kernel from x/image/draw,
// which widens its support when shrinking.
func ResampleCatmullRom(b Buf, width, height int) Buf {
	dst := Buf{Pix: make([]byte, width*height*BytesPerPixel), Width: width, Height: height}
	dstImg := ToNRGBA(dst)
	draw.CatmullRom.Scale(dstImg, dstImg.Bounds(), ToNRGBA(b), ToNRGBA(b).Bounds(), draw.Src, nil)
	return dst
}

// ResampleLanczos scales b with a Lanczos-3 filter.
func ResampleLanczos(b Buf, width, height int) Buf {
	out := resize.Resize(uint(width), uint(height), ToNRGBA(b), resize.Lanczos3)
	return FromStdImage(out)
}
