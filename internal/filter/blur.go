package filter

import (
	"sync"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// GaussianBlur blurs all four channels of src with a separable Gaussian of
// standard deviation sigma (quantised to 0.01). sigma <= 0 returns a copy.
//
// The horizontal pass writes float32 intermediates so the vertical pass
// rounds only once.
func GaussianBlur(pool *parallel.WorkerPool, src image.Buf, sigma float64) image.Buf {
	if sigma <= 0 {
		return src.Clone()
	}

	kernel := CachedGaussianKernel(sigma)
	width, height := src.Width, src.Height

	temp := getTempBuffer(width * height * 4)
	defer putTempBuffer(temp)

	parallel.Rows(pool, height, func(y0, y1 int) {
		blurRows(src, temp, y0, y1, kernel)
	})

	dst := src.Like()
	parallel.Rows(pool, height, func(y0, y1 int) {
		blurColumns(temp, dst, y0, y1, kernel)
	})
	return dst
}

// blurRows convolves rows [y0, y1) of src horizontally into temp.
func blurRows(src image.Buf, temp []float32, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	width := src.Width
	pix := src.Pix

	for y := y0; y < y1; y++ {
		row := y * width
		for x := range width {
			var r, g, b, a float32
			for k, w := range kernel {
				i := (row + clampIndex(x+k-half, width)) * 4
				r += float32(pix[i]) * w
				g += float32(pix[i+1]) * w
				b += float32(pix[i+2]) * w
				a += float32(pix[i+3]) * w
			}
			t := (row + x) * 4
			temp[t] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurColumns convolves temp vertically and writes rows [y0, y1) of dst.
func blurColumns(temp []float32, dst image.Buf, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	width, height := dst.Width, dst.Height
	pix := dst.Pix

	for y := y0; y < y1; y++ {
		for x := range width {
			var r, g, b, a float32
			for k, w := range kernel {
				t := (clampIndex(y+k-half, height)*width + x) * 4
				r += temp[t] * w
				g += temp[t+1] * w
				b += temp[t+2] * w
				a += temp[t+3] * w
			}
			i := (y*width + x) * 4
			pix[i] = clampUint8(r)
			pix[i+1] = clampUint8(g)
			pix[i+2] = clampUint8(b)
			pix[i+3] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer returns a float32 slice of exactly size elements. The
// contents are unspecified; every element is written before it is read.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns buf to the pool unless it is unusually large.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
