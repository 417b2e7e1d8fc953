package filter

import "testing"

func TestConvolve3x3_EmbossFlatIsMidGrey(t *testing.T) {
	// The emboss weights sum to 1, so flat regions keep their value plus bias.
	src := createSolid(t, 6, 6, 0, 0, 0, 200)
	got := Convolve3x3(nil, src, EmbossKernel, 128)
	assertSolid(t, got, 128, 128, 128, 200, 0)
}

func TestConvolve3x3_Identity(t *testing.T) {
	src := createSplit(t, 6, 5)
	id := Kernel3{0, 0, 0, 0, 1, 0, 0, 0, 0}
	got := Convolve3x3(nil, src, id, 0)
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("identity kernel changed byte %d", i)
		}
	}
}

func TestConvolve3x3_ClampToEdge(t *testing.T) {
	// A kernel that only reads the left neighbour: column 0 must read itself.
	src := createSplit(t, 4, 1)
	left := Kernel3{0, 0, 0, 1, 0, 0, 0, 0, 0}
	got := Convolve3x3(nil, src, left, 0)

	want := []byte{0, 0, 0, 255}
	for x := range 4 {
		r, _, _, _ := got.At(x, 0)
		if r != want[x] {
			t.Errorf("x=%d R=%d, want %d", x, r, want[x])
		}
	}
}
