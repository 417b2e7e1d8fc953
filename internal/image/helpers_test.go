package image

import "testing"

// newGradient returns a w x h buffer where R encodes x, G encodes y and
// every pixel is opaque.
func newGradient(t *testing.T, w, h int) Buf {
	t.Helper()
	b, err := NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf(%d, %d): %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			b.Set(x, y, byte(x*10), byte(y*10), 128, 255)
		}
	}
	return b
}

// newSolid returns a w x h buffer filled with one colour.
func newSolid(t *testing.T, w, h int, r, g, bl, a byte) Buf {
	t.Helper()
	b, err := NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf(%d, %d): %v", w, h, err)
	}
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
	}
	return b
}
