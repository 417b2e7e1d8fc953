package retouch

import (
	"bytes"
	"fmt"
	"image"

	imgbuf "github.com/gogpu/retouch/internal/image"
)

// Raster is an 8-bit RGBA image: Width*Height pixels stored row-major,
// four bytes per pixel in R, G, B, A order, non-premultiplied.
//
// Operators never modify their input raster; each returns a new Raster
// that owns its pixels. A Raster is safe for concurrent reads.
type Raster struct {
	buf imgbuf.Buf
}

// MaxPixels is the largest raster, in pixels, that any constructor or
// operator produces. Larger requests fail with ErrInvalidDimensions.
const MaxPixels = imgbuf.MaxPixels

// NewRaster allocates a transparent black raster.
func NewRaster(width, height int) (*Raster, error) {
	b, err := imgbuf.NewBuf(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Raster{buf: b}, nil
}

// RasterFromPix wraps pix, which must hold exactly width*height*4 bytes.
// The raster takes ownership of pix; the caller must not modify it
// afterwards.
func RasterFromPix(width, height int, pix []byte) (*Raster, error) {
	b, err := imgbuf.Wrap(width, height, pix)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidDimensions, width, height, len(pix))
	}
	return &Raster{buf: b}, nil
}

// FromImage converts any image.Image to a Raster.
func FromImage(img image.Image) (*Raster, error) {
	b := imgbuf.FromStdImage(img)
	if !b.Valid() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidDimensions)
	}
	return &Raster{buf: b}, nil
}

func wrap(b imgbuf.Buf) *Raster {
	return &Raster{buf: b}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.buf.Width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.buf.Height }

// Pix returns the underlying pixel bytes. Callers must not modify them.
func (r *Raster) Pix() []byte { return r.buf.Pix }

// At returns the channels of pixel (x, y).
func (r *Raster) At(x, y int) (red, green, blue, alpha uint8) {
	return r.buf.At(x, y)
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	return wrap(r.buf.Clone())
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.buf.Width == other.buf.Width &&
		r.buf.Height == other.buf.Height &&
		bytes.Equal(r.buf.Pix, other.buf.Pix)
}

// Image returns an *image.NRGBA view that shares the raster's pixels.
func (r *Raster) Image() *image.NRGBA {
	return imgbuf.ToNRGBA(r.buf)
}

// validate reports ErrInvalidDimensions for a nil or malformed raster.
func (r *Raster) validate(op string) error {
	if r == nil || !r.buf.Valid() {
		return &OpError{Op: op, Err: ErrInvalidDimensions}
	}
	return nil
}
