package image

import (
	"bytes"
	"testing"
)

func TestResample_Dimensions(t *testing.T) {
	src := newGradient(t, 8, 6)

	for _, mode := range []Interpolation{InterpNearest, InterpBilinear, InterpBicubic} {
		t.Run(mode.String(), func(t *testing.T) {
			got := Resample(nil, src, 13, 5, mode)
			if got.Width != 13 || got.Height != 5 || len(got.Pix) != 13*5*4 {
				t.Errorf("dims = %dx%d (%d bytes), want 13x5", got.Width, got.Height, len(got.Pix))
			}
		})
	}
}

func TestResample_SameSizeIsIdentity(t *testing.T) {
	src := newGradient(t, 9, 7)
	got := Resample(nil, src, 9, 7, InterpBilinear)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("same-size bilinear resample changed pixels")
	}
}

func TestResample_UniformStaysUniform(t *testing.T) {
	src := newSolid(t, 10, 10, 30, 60, 90, 255)

	tests := []struct {
		name string
		got  Buf
	}{
		{"bilinear up", Resample(nil, src, 25, 17, InterpBilinear)},
		{"bilinear down", Resample(nil, src, 3, 4, InterpBilinear)},
		{"catmull-rom", ResampleCatmullRom(src, 4, 4)},
		{"lanczos", ResampleLanczos(src, 20, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for y := range tt.got.Height {
				for x := range tt.got.Width {
					r, g, b, a := tt.got.At(x, y)
					if absDiff(r, 30) > 1 || absDiff(g, 60) > 1 || absDiff(b, 90) > 1 || a != 255 {
						t.Fatalf("(%d,%d) = (%d,%d,%d,%d), want about (30,60,90,255)", x, y, r, g, b, a)
					}
				}
			}
		})
	}
}
