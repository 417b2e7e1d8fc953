package retouch

import (
	"bytes"
	"fmt"
	"io"

	imgbuf "github.com/gogpu/retouch/internal/image"
)

// Format identifies an encoded image container.
type Format = imgbuf.Format

// Supported output formats. Decoding also accepts GIF.
const (
	PNG          = imgbuf.FormatPNG
	JPEG         = imgbuf.FormatJPEG
	WebP         = imgbuf.FormatWebP
	WebPLossless = imgbuf.FormatWebPLossless
	BMP          = imgbuf.FormatBMP
	TIFF         = imgbuf.FormatTIFF
)

// DefaultQuality is used for lossy formats when Encode is given quality 0.
const DefaultQuality = imgbuf.DefaultQuality

// ParseFormat converts a name ("png", "jpg", "webp-lossless", ...) or a
// file extension to a Format.
func ParseFormat(s string) (Format, error) {
	f, err := imgbuf.ParseFormat(s)
	if err != nil {
		return 0, &OpError{Op: "parse format", Err: fmt.Errorf("%w: %q", ErrInvalidParameter, s)}
	}
	return f, nil
}

// FormatFromPath picks a Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	f, err := imgbuf.FormatFromPath(path)
	if err != nil {
		return 0, &OpError{Op: "parse format", Err: fmt.Errorf("%w: %q", ErrInvalidParameter, path)}
	}
	return f, nil
}

// Decode decodes PNG, JPEG, GIF, WebP, BMP or TIFF bytes into a Raster.
// Empty or unrecognised input fails with ErrDecode.
func Decode(data []byte) (*Raster, error) {
	b, _, err := imgbuf.Decode(data)
	if err != nil {
		return nil, &OpError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	return wrap(b), nil
}

// DecodeReader decodes an image read from rd.
func DecodeReader(rd io.Reader) (*Raster, error) {
	b, _, err := imgbuf.DecodeReader(rd)
	if err != nil {
		return nil, &OpError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	return wrap(b), nil
}

// Encode encodes r in format f. quality in [1, 100] applies to JPEG and
// lossy WebP; 0 selects DefaultQuality. Other formats ignore it.
func Encode(r *Raster, f Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, r, f, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the encoded raster to w.
func EncodeTo(w io.Writer, r *Raster, f Format, quality int) error {
	if err := r.validate("encode"); err != nil {
		return err
	}
	if quality < 0 || quality > 100 {
		return rangeError("encode", "quality", float64(quality), 0, 100)
	}
	if err := imgbuf.Encode(w, r.buf, f, quality); err != nil {
		return &OpError{Op: "encode", Err: fmt.Errorf("%w: %w", ErrEncode, err)}
	}
	return nil
}
