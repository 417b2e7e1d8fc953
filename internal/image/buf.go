// Package image holds the RGBA8 buffer shared by the raster operators,
// together with the codecs, samplers and resamplers that work on it.
//
// Pixels are stored row-major, four bytes per pixel in R, G, B, A order,
// non-premultiplied, with no padding between rows.
package image

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the buffer would exceed MaxPixels.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when a pixel slice does not hold width*height*4 bytes.
	ErrDataSize = errors.New("image: pixel data size mismatch")
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// MaxPixels is the largest buffer, in pixels, that NewBuf and Wrap accept
// (1 GiB of RGBA8).
const MaxPixels = 1 << 28

// CheckSize reports ErrInvalidDimensions for a non-positive dimension or a
// buffer of more than MaxPixels. It never overflows.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return ErrInvalidDimensions
	}
	return nil
}

// Buf is a view over an RGBA8 pixel slice.
//
// Buf is a small value type: copying a Buf copies the header, not the
// pixels. Use Clone for an independent copy.
type Buf struct {
	Pix    []byte
	Width  int
	Height int
}

// NewBuf allocates a zeroed (transparent black) buffer.
func NewBuf(width, height int) (Buf, error) {
	if err := CheckSize(width, height); err != nil {
		return Buf{}, err
	}
	return Buf{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}, nil
}

// Wrap validates pix against the dimensions and returns a Buf sharing it.
func Wrap(width, height int, pix []byte) (Buf, error) {
	if err := CheckSize(width, height); err != nil {
		return Buf{}, err
	}
	if len(pix) != width*height*BytesPerPixel {
		return Buf{}, ErrDataSize
	}
	return Buf{Pix: pix, Width: width, Height: height}, nil
}

// Stride returns the number of bytes per row.
func (b Buf) Stride() int {
	return b.Width * BytesPerPixel
}

// Offset returns the index of the first byte of pixel (x, y).
func (b Buf) Offset(x, y int) int {
	return (y*b.Width + x) * BytesPerPixel
}

// Row returns the bytes of row y.
func (b Buf) Row(y int) []byte {
	start := y * b.Stride()
	return b.Pix[start : start+b.Stride()]
}

// At returns the channels of pixel (x, y). Coordinates must be in range.
func (b Buf) At(x, y int) (r, g, bl, a byte) {
	i := b.Offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// Set writes the channels of pixel (x, y). Coordinates must be in range.
func (b Buf) Set(x, y int, r, g, bl, a byte) {
	i := b.Offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, bl, a
}

// Clone returns a deep copy.
func (b Buf) Clone() Buf {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return Buf{Pix: pix, Width: b.Width, Height: b.Height}
}

// Like allocates a zeroed buffer with the same dimensions as b.
func (b Buf) Like() Buf {
	return Buf{
		Pix:    make([]byte, len(b.Pix)),
		Width:  b.Width,
		Height: b.Height,
	}
}

// Valid reports whether the dimensions are positive and match the pixel slice.
func (b Buf) Valid() bool {
	return CheckSize(b.Width, b.Height) == nil && len(b.Pix) == b.Width*b.Height*BytesPerPixel
}
