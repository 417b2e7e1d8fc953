package retouch

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// newSolid returns a w x h raster filled with one colour.
func newSolid(t testing.TB, w, h int, r, g, b, a uint8) *Raster {
	t.Helper()
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	ras, err := RasterFromPix(w, h, pix)
	if err != nil {
		t.Fatalf("RasterFromPix(%d, %d): %v", w, h, err)
	}
	return ras
}

// newGradient returns an opaque raster where R encodes x and G encodes y.
func newGradient(t testing.TB, w, h int) *Raster {
	t.Helper()
	pix := make([]byte, w*h*4)
	for y := range h {
		for x := range w {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = byte(x*10), byte(y*10), 128, 255
		}
	}
	ras, err := RasterFromPix(w, h, pix)
	if err != nil {
		t.Fatalf("RasterFromPix(%d, %d): %v", w, h, err)
	}
	return ras
}

// newNoise returns an opaque raster of deterministic random colours.
func newNoise(t testing.TB, w, h int, seed uint64) *Raster {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = byte(rng.IntN(256))
		pix[i+1] = byte(rng.IntN(256))
		pix[i+2] = byte(rng.IntN(256))
		pix[i+3] = 255
	}
	ras, err := RasterFromPix(w, h, pix)
	if err != nil {
		t.Fatalf("RasterFromPix(%d, %d): %v", w, h, err)
	}
	return ras
}

// pixel returns the channels of (x, y) as an array for easy comparison.
func pixel(r *Raster, x, y int) [4]uint8 {
	red, green, blue, alpha := r.At(x, y)
	return [4]uint8{red, green, blue, alpha}
}

// assertSame fails unless got has the same size and bytes as want and
// does not share its pixel slice.
func assertSame(t *testing.T, got, want *Raster) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("raster changed: got %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if len(got.Pix()) > 0 && &got.Pix()[0] == &want.Pix()[0] {
		t.Fatal("result shares the input pixel slice")
	}
}

// assertErrorIs fails unless err matches target.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
