package retouch

import (
	"testing"

	"github.com/gogpu/retouch/internal/color"
)

func TestHighlights(t *testing.T) {
	dark := newSolid(t, 2, 2, 50, 60, 70, 255)
	got, err := Highlights(dark, 100)
	if err != nil {
		t.Fatal(err)
	}
	assertSame(t, got, dark)

	bright := newSolid(t, 2, 2, 230, 230, 230, 255)
	up, err := Highlights(bright, 100)
	if err != nil {
		t.Fatal(err)
	}
	down, err := Highlights(bright, -100)
	if err != nil {
		t.Fatal(err)
	}
	if u, d := pixel(up, 0, 0), pixel(down, 0, 0); u[0] <= 230 || d[0] >= 230 {
		t.Errorf("highlights: +100 = %v, -100 = %v", u, d)
	}

	_, err = Highlights(bright, 100.5)
	assertErrorIs(t, err, ErrInvalidParameter)
}

func TestShadows(t *testing.T) {
	bright := newSolid(t, 2, 2, 200, 210, 220, 255)
	got, err := Shadows(bright, -100)
	if err != nil {
		t.Fatal(err)
	}
	assertSame(t, got, bright)

	dark := newSolid(t, 2, 2, 40, 40, 40, 255)
	up, err := Shadows(dark, 100)
	if err != nil {
		t.Fatal(err)
	}
	down, err := Shadows(dark, -100)
	if err != nil {
		t.Fatal(err)
	}
	if u, d := pixel(up, 0, 0), pixel(down, 0, 0); u[0] <= 40 || d[0] >= 40 {
		t.Errorf("shadows: +100 = %v, -100 = %v", u, d)
	}
}

func TestMidGreyUntouchedByToneMasks(t *testing.T) {
	grey := newSolid(t, 1, 1, 127, 127, 127, 255)
	for _, amount := range []float64{-100, 100} {
		h, err := Highlights(grey, amount)
		if err != nil {
			t.Fatal(err)
		}
		if !h.Equal(grey) {
			t.Errorf("Highlights(%v) moved mid-grey to %v", amount, pixel(h, 0, 0))
		}
	}
}

func TestCurves(t *testing.T) {
	src := newSolid(t, 1, 1, 64, 64, 64, 255)
	got, err := Curves(src, CurveGammas{R: 2, G: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	// 255 * (64/255)^(1/2) = 127.7; 255 * (64/255)^2 = 16.06.
	if p, want := pixel(got, 0, 0), [4]uint8{128, 16, 64, 255}; p != want {
		t.Errorf("curves = %v, want %v", p, want)
	}

	zero, err := Curves(src, CurveGammas{})
	if err != nil {
		t.Fatal(err)
	}
	assertSame(t, zero, src)

	_, err = Curves(src, CurveGammas{B: 5})
	assertErrorIs(t, err, ErrInvalidParameter)
}

func TestLevels(t *testing.T) {
	pix := []byte{
		30, 50, 125, 255,
		200, 250, 0, 255,
	}
	src, err := RasterFromPix(2, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Levels(src, LevelsParams{Black: 50, White: 200, Gamma: 1})
	if err != nil {
		t.Fatal(err)
	}
	if p, want := pixel(got, 0, 0), [4]uint8{0, 0, 128, 255}; p != want {
		t.Errorf("pixel 0 = %v, want %v", p, want)
	}
	if p, want := pixel(got, 1, 0), [4]uint8{255, 255, 0, 255}; p != want {
		t.Errorf("pixel 1 = %v, want %v", p, want)
	}
}

func TestLevelsInvalid(t *testing.T) {
	src := newSolid(t, 1, 1, 1, 2, 3, 255)
	tests := []struct {
		name string
		l    LevelsParams
	}{
		{"black above white", LevelsParams{Black: 200, White: 100}},
		{"black equals white", LevelsParams{Black: 100, White: 100}},
		{"gamma too large", LevelsParams{Gamma: 3.5}},
		{"negative black", LevelsParams{Black: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Levels(src, tt.l)
			assertErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestGrayscale(t *testing.T) {
	src := newSolid(t, 1, 1, 100, 150, 200, 255)
	got, err := Grayscale(src)
	if err != nil {
		t.Fatal(err)
	}
	p := pixel(got, 0, 0)
	if p[0] != p[1] || p[1] != p[2] {
		t.Fatalf("grayscale not grey: %v", p)
	}
	// 0.299*100 + 0.587*150 + 0.114*200 = 140.75
	if absDiff(p[0], 141) > 1 {
		t.Errorf("luma = %d, want 141", p[0])
	}
}

func TestSepia(t *testing.T) {
	src := newSolid(t, 1, 1, 100, 100, 100, 255)
	got, err := Sepia(src)
	if err != nil {
		t.Fatal(err)
	}
	p := pixel(got, 0, 0)
	// grey 100 tinted by (1.351, 1.203, 0.937)
	want := [4]uint8{135, 120, 94, 255}
	for c := range 3 {
		if absDiff(p[c], want[c]) > 1 {
			t.Errorf("sepia = %v, want about %v", p, want)
			break
		}
	}
	if !(p[0] > p[1] && p[1] > p[2]) {
		t.Errorf("sepia not warm: %v", p)
	}
}

func TestToneLUTsAreCached(t *testing.T) {
	if gammaLUT(1.7) != gammaLUT(1.7) {
		t.Error("gammaLUT rebuilt a cached table")
	}
	if gammaLUT(1.7) == gammaLUT(1.8) {
		t.Error("gammaLUT shared a table between gammas")
	}
	l := LevelsParams{Black: 10, White: 200, Gamma: 1.2}
	if levelsLUT(l) != levelsLUT(l) {
		t.Error("levelsLUT rebuilt a cached table")
	}
	if exposureLUT(0.5) == exposureLUT(-0.5) {
		t.Error("exposureLUT shared a table between stops")
	}
	if lut := gammaLUT(1); *lut != color.IdentityLUT() {
		t.Error("gamma 1 is not the identity")
	}
}
