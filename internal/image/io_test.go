package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestDecode_Empty(t *testing.T) {
	if _, _, err := Decode(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("Decode(garbage) should fail")
	}
}

func TestEncodeDecode_Lossless(t *testing.T) {
	src := newGradient(t, 7, 5)

	tests := []struct {
		format   Format
		wantName string
	}{
		{FormatPNG, "png"},
		{FormatBMP, "bmp"},
		{FormatTIFF, "tiff"},
		{FormatWebPLossless, "webp"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, tt.format, 0); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, name, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("decoder name = %q, want %q", name, tt.wantName)
			}
			if got.Width != src.Width || got.Height != src.Height {
				t.Fatalf("dims = %dx%d, want %dx%d", got.Width, got.Height, src.Width, src.Height)
			}
			if !bytes.Equal(got.Pix, src.Pix) {
				t.Error("round trip changed pixels")
			}
		})
	}
}

func TestEncodeDecode_Lossy(t *testing.T) {
	src := newSolid(t, 16, 16, 200, 100, 50, 255)

	for _, f := range []Format{FormatJPEG, FormatWebP} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f, 95); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, _, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			r, g, b, _ := got.At(8, 8)
			if absDiff(r, 200) > 6 || absDiff(g, 100) > 6 || absDiff(b, 50) > 6 {
				t.Errorf("centre = (%d, %d, %d), want about (200, 100, 50)", r, g, b)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Buf{}, FormatPNG, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Encode(empty) error = %v, want ErrInvalidDimensions", err)
	}
	if err := Encode(&buf, newSolid(t, 1, 1, 0, 0, 0, 255), Format(99), 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(bad format) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestClampQuality(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultQuality},
		{-5, 1},
		{50, 50},
		{150, 100},
	}
	for _, tt := range tests {
		if got := clampQuality(tt.in); got != tt.want {
			t.Errorf("clampQuality(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromStdImage_NRGBASubImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.Set(4, 5, color.NRGBA{R: 128, G: 64, B: 32, A: 200})
	sub := nrgba.SubImage(image.Rect(3, 3, 8, 8))

	b := FromStdImage(sub)
	if b.Width != 5 || b.Height != 5 {
		t.Fatalf("dims = %dx%d, want 5x5", b.Width, b.Height)
	}
	r, g, bl, a := b.At(1, 2)
	if r != 128 || g != 64 || bl != 32 || a != 200 {
		t.Errorf("pixel = (%d, %d, %d, %d), want (128, 64, 32, 200)", r, g, bl, a)
	}
}

func TestFromStdImage_UnpremultipliesRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.SetRGBA(1, 1, color.RGBA{R: 100, G: 50, B: 0, A: 128})

	b := FromStdImage(rgba)
	r, g, bl, a := b.At(1, 1)
	if a != 128 || absDiff(r, 199) > 1 || absDiff(g, 99) > 1 || bl != 0 {
		t.Errorf("pixel = (%d, %d, %d, %d), want about (199, 99, 0, 128)", r, g, bl, a)
	}
}

func TestFromStdImage_Gray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	gray.SetGray(2, 0, color.Gray{Y: 77})

	b := FromStdImage(gray)
	r, g, bl, a := b.At(2, 0)
	if r != 77 || g != 77 || bl != 77 || a != 255 {
		t.Errorf("pixel = (%d, %d, %d, %d), want (77, 77, 77, 255)", r, g, bl, a)
	}
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
