package image

import (
	"errors"
	"math"
	"testing"
)

func TestNewBuf(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"valid", 3, 2, nil},
		{"zero width", 0, 2, ErrInvalidDimensions},
		{"zero height", 3, 0, ErrInvalidDimensions},
		{"negative", -1, 5, ErrInvalidDimensions},
		{"byte size overflows", math.MaxInt, 2, ErrInvalidDimensions},
		{"over pixel limit", 1 << 15, 1 << 14, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuf(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuf(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(b.Pix) != tt.w*tt.h*4 {
				t.Errorf("len(Pix) = %d, want %d", len(b.Pix), tt.w*tt.h*4)
			}
			if !b.Valid() {
				t.Error("Valid() = false for a fresh buffer")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if _, err := Wrap(2, 2, make([]byte, 16)); err != nil {
		t.Errorf("Wrap(2, 2, 16 bytes) error = %v", err)
	}
	if _, err := Wrap(2, 2, make([]byte, 15)); !errors.Is(err, ErrDataSize) {
		t.Errorf("Wrap(2, 2, 15 bytes) error = %v, want ErrDataSize", err)
	}
	if _, err := Wrap(0, 2, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Wrap(0, 2) error = %v, want ErrInvalidDimensions", err)
	}
	// width*height*4 wraps to 0 here, which must not match an empty slice.
	if _, err := Wrap(1<<62, 1, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Wrap(1<<62, 1) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBufSetAt(t *testing.T) {
	b := newSolid(t, 4, 3, 0, 0, 0, 0)
	b.Set(2, 1, 10, 20, 30, 40)

	r, g, bl, a := b.At(2, 1)
	if r != 10 || g != 20 || bl != 30 || a != 40 {
		t.Errorf("At(2, 1) = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, bl, a)
	}
	if got := b.Offset(2, 1); got != (1*4+2)*4 {
		t.Errorf("Offset(2, 1) = %d, want %d", got, (1*4+2)*4)
	}
	if got := len(b.Row(2)); got != 16 {
		t.Errorf("len(Row(2)) = %d, want 16", got)
	}
}

func TestBufClone(t *testing.T) {
	b := newGradient(t, 3, 3)
	c := b.Clone()
	c.Pix[0] = 99

	if b.Pix[0] == 99 {
		t.Error("Clone shares pixel memory with the original")
	}
	if c.Width != b.Width || c.Height != b.Height {
		t.Errorf("Clone dims = %dx%d, want %dx%d", c.Width, c.Height, b.Width, b.Height)
	}
}
