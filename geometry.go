package retouch

import (
	"fmt"
	"math"

	imgbuf "github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Rotate90 rotates r a quarter turn clockwise; width and height swap.
func Rotate90(r *Raster) (*Raster, error) {
	if err := r.validate("rotate"); err != nil {
		return nil, err
	}
	return wrap(imgbuf.Rotate90(r.buf)), nil
}

// Rotate180 rotates r a half turn.
func Rotate180(r *Raster) (*Raster, error) {
	if err := r.validate("rotate"); err != nil {
		return nil, err
	}
	return wrap(imgbuf.Rotate180(r.buf)), nil
}

// Rotate270 rotates r a quarter turn counter-clockwise.
func Rotate270(r *Raster) (*Raster, error) {
	if err := r.validate("rotate"); err != nil {
		return nil, err
	}
	return wrap(imgbuf.Rotate270(r.buf)), nil
}

// Rotate rotates r clockwise by a multiple of 90 degrees. Negative
// multiples rotate counter-clockwise. Other angles fail with
// ErrInvalidParameter; use RotateArbitrary for those.
func Rotate(r *Raster, degrees int) (*Raster, error) {
	if err := r.validate("rotate"); err != nil {
		return nil, err
	}
	if degrees%90 != 0 {
		return nil, &OpError{Op: "rotate", Err: fmt.Errorf("%w: %d is not a multiple of 90", ErrInvalidParameter, degrees)}
	}
	return rotateQuarter(r, ((degrees%360)+360)%360), nil
}

func rotateQuarter(r *Raster, degrees int) *Raster {
	switch degrees {
	case 90:
		return wrap(imgbuf.Rotate90(r.buf))
	case 180:
		return wrap(imgbuf.Rotate180(r.buf))
	case 270:
		return wrap(imgbuf.Rotate270(r.buf))
	default:
		return r.Clone()
	}
}

// rotateFill is the colour of canvas areas that a rotation does not cover.
var rotateFill = [4]uint8{0, 0, 0, 0}

// RotateArbitrary rotates r clockwise by degrees about its centre.
//
// The canvas grows to ceil(w|cos|+h|sin|) x ceil(w|sin|+h|cos|) so no
// source pixel is lost. Every output pixel centre is mapped back into the
// source and sampled bilinearly; outputs whose source point lies outside r
// are transparent black. Multiples of 90 degrees use the exact
// permutations.
func RotateArbitrary(r *Raster, degrees float64) (*Raster, error) {
	return rotateArbitrary(nil, r, degrees)
}

func rotateArbitrary(pool *parallel.WorkerPool, r *Raster, degrees float64) (*Raster, error) {
	const op = "rotate"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, &OpError{Op: op, Err: fmt.Errorf("%w: angle %v", ErrInvalidParameter, degrees)}
	}

	norm := math.Mod(degrees, 360)
	if norm < 0 {
		norm += 360
	}
	if q := math.Round(norm / 90); math.Abs(norm-q*90) < 1e-9 {
		return rotateQuarter(r, int(q)*90%360), nil
	}

	rad := norm * math.Pi / 180
	if w, h := imgbuf.RotatedSize(r.Width(), r.Height(), rad); imgbuf.CheckSize(w, h) != nil {
		return nil, &OpError{Op: op, Err: fmt.Errorf("%w: rotated canvas %dx%d", ErrInvalidDimensions, w, h)}
	}
	return wrap(imgbuf.RotateExpand(pool, r.buf, rad, imgbuf.InterpBilinear, rotateFill)), nil
}

// FlipHorizontal mirrors r left to right.
func FlipHorizontal(r *Raster) (*Raster, error) {
	if err := r.validate("flip"); err != nil {
		return nil, err
	}
	return wrap(imgbuf.FlipHorizontal(r.buf)), nil
}

// FlipVertical mirrors r top to bottom.
func FlipVertical(r *Raster) (*Raster, error) {
	if err := r.validate("flip"); err != nil {
		return nil, err
	}
	return wrap(imgbuf.FlipVertical(r.buf)), nil
}

// Crop returns the width x height rectangle whose top-left corner is
// (x, y). The rectangle must be non-empty and lie entirely inside r;
// otherwise Crop fails with ErrInvalidRegion.
func Crop(r *Raster, x, y, width, height int) (*Raster, error) {
	const op = "crop"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		width > r.Width()-x || height > r.Height()-y {
		return nil, &OpError{Op: op, Err: fmt.Errorf("%w: %dx%d+%d+%d outside %dx%d",
			ErrInvalidRegion, width, height, x, y, r.Width(), r.Height())}
	}
	return wrap(imgbuf.Crop(r.buf, x, y, width, height)), nil
}

// ResampleFilter selects the interpolation used by ResizeWith.
type ResampleFilter uint8

const (
	// Bilinear blends the four nearest pixels. It is the default.
	Bilinear ResampleFilter = iota

	// Nearest picks the closest pixel.
	Nearest

	// Bicubic blends a 4x4 neighbourhood with Catmull-Rom weights.
	Bicubic

	// CatmullRom is Catmull-Rom with a support that widens when shrinking,
	// which avoids aliasing on strong downscales.
	CatmullRom

	// Lanczos3 is a windowed sinc over three lobes.
	Lanczos3
)

// String returns the filter name.
func (f ResampleFilter) String() string {
	switch f {
	case Bilinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	case Bicubic:
		return "bicubic"
	case CatmullRom:
		return "catmull-rom"
	case Lanczos3:
		return "lanczos3"
	default:
		return "unknown"
	}
}

// ParseResampleFilter converts a filter name to a ResampleFilter.
func ParseResampleFilter(s string) (ResampleFilter, error) {
	for f := Bilinear; f <= Lanczos3; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, &OpError{Op: "resize", Err: fmt.Errorf("%w: filter %q", ErrInvalidParameter, s)}
}

// Resize scales r to width x height with bilinear interpolation.
// Pixel centres are aligned, so resizing to the same size is lossless.
func Resize(r *Raster, width, height int) (*Raster, error) {
	return resize(nil, r, width, height, Bilinear)
}

// ResizeWith scales r to width x height with the given filter.
func ResizeWith(r *Raster, width, height int, f ResampleFilter) (*Raster, error) {
	return resize(nil, r, width, height, f)
}

func resize(pool *parallel.WorkerPool, r *Raster, width, height int, f ResampleFilter) (*Raster, error) {
	const op = "resize"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if imgbuf.CheckSize(width, height) != nil {
		return nil, &OpError{Op: op, Err: fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)}
	}
	if width == r.Width() && height == r.Height() {
		return r.Clone(), nil
	}

	switch f {
	case Bilinear:
		return wrap(imgbuf.Resample(pool, r.buf, width, height, imgbuf.InterpBilinear)), nil
	case Nearest:
		return wrap(imgbuf.Resample(pool, r.buf, width, height, imgbuf.InterpNearest)), nil
	case Bicubic:
		return wrap(imgbuf.Resample(pool, r.buf, width, height, imgbuf.InterpBicubic)), nil
	case CatmullRom:
		return wrap(imgbuf.ResampleCatmullRom(r.buf, width, height)), nil
	case Lanczos3:
		return wrap(imgbuf.ResampleLanczos(r.buf, width, height)), nil
	default:
		return nil, &OpError{Op: op, Err: fmt.Errorf("%w: filter %d", ErrInvalidParameter, f)}
	}
}
