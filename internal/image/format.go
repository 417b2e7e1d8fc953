package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an encoded container format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG; alpha is discarded.
	FormatJPEG

	// FormatWebP is lossy WebP with alpha.
	FormatWebP

	// FormatWebPLossless is lossless WebP.
	FormatWebPLossless

	// FormatBMP is uncompressed BMP.
	FormatBMP

	// FormatTIFF is deflate-compressed TIFF.
	FormatTIFF

	formatCount
)

var formatNames = [formatCount]string{
	FormatPNG:          "png",
	FormatJPEG:         "jpeg",
	FormatWebP:         "webp",
	FormatWebPLossless: "webp-lossless",
	FormatBMP:          "bmp",
	FormatTIFF:         "tiff",
}

var formatExtensions = [formatCount]string{
	FormatPNG:          ".png",
	FormatJPEG:         ".jpg",
	FormatWebP:         ".webp",
	FormatWebPLossless: ".webp",
	FormatBMP:          ".bmp",
	FormatTIFF:         ".tiff",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatNames[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	if !f.IsValid() {
		return ""
	}
	return formatExtensions[f]
}

// Lossy reports whether the format honours a quality setting.
func (f Format) Lossy() bool {
	return f == FormatJPEG || f == FormatWebP
}

// ParseFormat converts a format name or file extension to a Format.
// Matching is case-insensitive and ignores a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "webp-lossless", "webpll":
		return FormatWebPLossless, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, ErrUnsupportedFormat
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
