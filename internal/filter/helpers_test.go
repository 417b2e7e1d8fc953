package filter

import (
	"testing"

	"github.com/gogpu/retouch/internal/image"
)

// Test helper functions shared across filter tests.

// createSolid creates a buffer filled with one colour.
func createSolid(t testing.TB, w, h int, r, g, b, a byte) image.Buf {
	t.Helper()
	buf, err := image.NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf: %v", err)
	}
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], buf.Pix[i+3] = r, g, b, a
	}
	return buf
}

// createSplit creates an opaque buffer whose left half is black and right
// half is white.
func createSplit(t testing.TB, w, h int) image.Buf {
	t.Helper()
	buf := createSolid(t, w, h, 0, 0, 0, 255)
	for y := range h {
		for x := w / 2; x < w; x++ {
			buf.Set(x, y, 255, 255, 255, 255)
		}
	}
	return buf
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// assertSolid fails if any pixel of buf differs from (r, g, b, a) by more
// than tol.
func assertSolid(t *testing.T, buf image.Buf, r, g, b, a byte, tol int) {
	t.Helper()
	want := [4]byte{r, g, b, a}
	for i := 0; i < len(buf.Pix); i += 4 {
		for c := range 4 {
			d := int(buf.Pix[i+c]) - int(want[c])
			if d < -tol || d > tol {
				t.Fatalf("pixel %d = %v, want %v (tol %d)", i/4, buf.Pix[i:i+4], want, tol)
			}
		}
	}
}
