package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // registers the GIF decoder
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultQuality is used by lossy encoders when the caller passes 0.
const DefaultQuality = 90

// Decode decodes PNG, JPEG, GIF, WebP, BMP or TIFF data into a Buf.
// The second result is the name reported by the matching decoder.
func Decode(data []byte) (Buf, string, error) {
	if len(data) == 0 {
		return Buf{}, "", ErrEmptyData
	}
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes an image from r, auto-detecting the format.
func DecodeReader(r io.Reader) (Buf, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return Buf{}, "", fmt.Errorf("image: decode: %w", err)
	}
	b := FromStdImage(img)
	if !b.Valid() {
		return Buf{}, name, fmt.Errorf("image: decode %s: %w", name, ErrInvalidDimensions)
	}
	return b, name, nil
}

// Encode writes b to w in the given format.
// quality applies to lossy formats only; 0 selects DefaultQuality and other
// values are clamped to [1, 100].
func Encode(w io.Writer, b Buf, f Format, quality int) error {
	if !b.Valid() {
		return ErrInvalidDimensions
	}
	img := ToNRGBA(b)

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(quality)})
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(clampQuality(quality))})
	case FormatWebPLossless:
		err = webp.Encode(w, img, &webp.Options{Lossless: true})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

func clampQuality(q int) int {
	if q == 0 {
		return DefaultQuality
	}
	return max(1, min(q, 100))
}

// FromStdImage converts any image.Image to a non-premultiplied RGBA8 Buf.
func FromStdImage(img image.Image) Buf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return Buf{}
	}
	buf := Buf{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}

	// Fast path: NRGBA already has the right layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := (y+bounds.Min.Y-nrgba.Rect.Min.Y)*nrgba.Stride + (bounds.Min.X-nrgba.Rect.Min.X)*4
			copy(buf.Row(y), nrgba.Pix[start:start+width*4])
		}
		return buf
	}

	// Everything else, including premultiplied RGBA, goes through the
	// NRGBA colour model.
	dst := ToNRGBA(buf)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return buf
}

// ToNRGBA returns an *image.NRGBA that shares b's pixels.
func ToNRGBA(b Buf) *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
