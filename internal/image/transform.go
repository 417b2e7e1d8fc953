package image

import (
	"math"

	"github.com/gogpu/retouch/internal/parallel"
)

// Rotate90 rotates b a quarter turn clockwise. The result is Height x Width.
func Rotate90(b Buf) Buf {
	dst := Buf{Pix: make([]byte, len(b.Pix)), Width: b.Height, Height: b.Width}
	for y := range b.Height {
		for x := range b.Width {
			copyPixel(dst, b.Height-1-y, x, b, x, y)
		}
	}
	return dst
}

// Rotate180 rotates b a half turn.
func Rotate180(b Buf) Buf {
	dst := b.Like()
	for y := range b.Height {
		for x := range b.Width {
			copyPixel(dst, b.Width-1-x, b.Height-1-y, b, x, y)
		}
	}
	return dst
}

// Rotate270 rotates b a quarter turn counter-clockwise.
func Rotate270(b Buf) Buf {
	dst := Buf{Pix: make([]byte, len(b.Pix)), Width: b.Height, Height: b.Width}
	for y := range b.Height {
		for x := range b.Width {
			copyPixel(dst, y, b.Width-1-x, b, x, y)
		}
	}
	return dst
}

// FlipHorizontal mirrors b left to right.
func FlipHorizontal(b Buf) Buf {
	dst := b.Like()
	for y := range b.Height {
		for x := range b.Width {
			copyPixel(dst, b.Width-1-x, y, b, x, y)
		}
	}
	return dst
}

// FlipVertical mirrors b top to bottom.
func FlipVertical(b Buf) Buf {
	dst := b.Like()
	for y := range b.Height {
		copy(dst.Row(b.Height-1-y), b.Row(y))
	}
	return dst
}

// Crop copies the w x h rectangle at (x, y). The rectangle must lie inside b.
func Crop(b Buf, x, y, w, h int) Buf {
	dst := Buf{Pix: make([]byte, w*h*BytesPerPixel), Width: w, Height: h}
	for row := range h {
		start := b.Offset(x, y+row)
		copy(dst.Row(row), b.Pix[start:start+w*BytesPerPixel])
	}
	return dst
}

// RotatedSize returns the canvas that holds b rotated by angle radians.
func RotatedSize(width, height int, angle float64) (int, int) {
	sin, cos := math.Sincos(angle)
	sin, cos = math.Abs(sin), math.Abs(cos)
	w := float64(width)
	h := float64(height)
	return ceilDim(w*cos + h*sin), ceilDim(w*sin + h*cos)
}

// ceilDim rounds up, treating values within 1e-6 of an integer as that integer.
func ceilDim(v float64) int {
	return max(1, int(math.Ceil(v-1e-6)))
}

// RotateExpand rotates b clockwise by angle radians about its centre onto a
// canvas large enough to hold every source pixel. Each destination pixel
// centre is mapped back into b and sampled with mode; destinations whose
// source point falls outside b are set to fill.
func RotateExpand(pool *parallel.WorkerPool, b Buf, angle float64, mode Interpolation, fill [4]byte) Buf {
	nw, nh := RotatedSize(b.Width, b.Height, angle)
	dst := Buf{Pix: make([]byte, nw*nh*BytesPerPixel), Width: nw, Height: nh}

	srcW := float64(b.Width)
	srcH := float64(b.Height)
	forward := Translate((float64(nw)-srcW)/2, (float64(nh)-srcH)/2).
		Multiply(RotateAt(angle, srcW/2, srcH/2))
	inverse, _ := forward.Invert()

	parallel.Rows(pool, nh, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range nw {
				sx, sy := inverse.TransformPoint(float64(x)+0.5, float64(y)+0.5)
				if sx < 0 || sy < 0 || sx >= srcW || sy >= srcH {
					dst.Set(x, y, fill[0], fill[1], fill[2], fill[3])
					continue
				}
				i := dst.Offset(x, y)
				p := dst.Pix[i : i+4 : i+4]
				p[0], p[1], p[2], p[3] = Sample(b, sx, sy, mode)
			}
		}
	})
	return dst
}

func copyPixel(dst Buf, dx, dy int, src Buf, sx, sy int) {
	di := dst.Offset(dx, dy)
	si := src.Offset(sx, sy)
	copy(dst.Pix[di:di+4], src.Pix[si:si+4])
}
