package image

import "testing"

func TestSampleNearest(t *testing.T) {
	img := newGradient(t, 4, 4)

	tests := []struct {
		name       string
		x, y       float64
		wantR      byte
		wantG      byte
	}{
		{"top-left", 0, 0, 0, 0},
		{"pixel centre (1,2)", 1.5, 2.5, 10, 20},
		{"right edge clamps", 10, 0.5, 30, 0},
		{"negative clamps", -3, -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, _, _ := SampleNearest(img, tt.x, tt.y)
			if r != tt.wantR || g != tt.wantG {
				t.Errorf("SampleNearest(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, r, g, tt.wantR, tt.wantG)
			}
		})
	}
}

func TestSampleBilinear_PixelCentresAreExact(t *testing.T) {
	img := newGradient(t, 5, 5)
	for y := range 5 {
		for x := range 5 {
			r, g, bl, a := SampleBilinear(img, float64(x)+0.5, float64(y)+0.5)
			wr, wg, wb, wa := img.At(x, y)
			if r != wr || g != wg || bl != wb || a != wa {
				t.Fatalf("centre (%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)", x, y, r, g, bl, a, wr, wg, wb, wa)
			}
		}
	}
}

func TestSampleBilinear_Midpoint(t *testing.T) {
	img := newGradient(t, 4, 1)
	// Halfway between the centres of pixel 1 (R=10) and pixel 2 (R=20).
	r, _, _, _ := SampleBilinear(img, 2.0, 0.5)
	if r != 15 {
		t.Errorf("midpoint R = %d, want 15", r)
	}
}

func TestSampleBicubic_UniformStaysUniform(t *testing.T) {
	img := newSolid(t, 6, 6, 90, 160, 30, 255)
	for _, p := range [][2]float64{{0.2, 0.2}, {3.1, 2.7}, {5.9, 5.9}} {
		r, g, b, a := SampleBicubic(img, p[0], p[1])
		if r != 90 || g != 160 || b != 30 || a != 255 {
			t.Errorf("SampleBicubic(%v) = (%d,%d,%d,%d), want (90,160,30,255)", p, r, g, b, a)
		}
	}
}

func TestInterpolationString(t *testing.T) {
	tests := []struct {
		mode Interpolation
		want string
	}{
		{InterpNearest, "Nearest"},
		{InterpBilinear, "Bilinear"},
		{InterpBicubic, "Bicubic"},
		{Interpolation(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCubicWeight(t *testing.T) {
	if w := cubicWeight(0); w != 1 {
		t.Errorf("cubicWeight(0) = %v, want 1", w)
	}
	if w := cubicWeight(1); w != 0 {
		t.Errorf("cubicWeight(1) = %v, want 0", w)
	}
	if w := cubicWeight(2.5); w != 0 {
		t.Errorf("cubicWeight(2.5) = %v, want 0", w)
	}
}
