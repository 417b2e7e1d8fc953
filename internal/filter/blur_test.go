package filter

import (
	"bytes"
	"testing"

	"github.com/gogpu/retouch/internal/parallel"
)

func TestGaussianBlurZeroSigma(t *testing.T) {
	src := createSplit(t, 8, 8)
	got := GaussianBlur(nil, src, 0)

	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("sigma 0 changed pixels")
	}
	got.Pix[0] = 1
	if src.Pix[0] == 1 {
		t.Error("sigma 0 returned the input buffer")
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	src := createSolid(t, 20, 20, 90, 120, 200, 255)
	got := GaussianBlur(nil, src, 3)
	assertSolid(t, got, 90, 120, 200, 255, 0)
}

func TestGaussianBlurSoftensEdge(t *testing.T) {
	src := createSplit(t, 20, 4)
	got := GaussianBlur(nil, src, 2)

	left, _, _, _ := got.At(9, 2)
	right, _, _, _ := got.At(10, 2)
	if left == 0 || right == 255 {
		t.Errorf("edge not softened: left=%d right=%d", left, right)
	}
	if far, _, _, _ := got.At(0, 2); far != 0 {
		t.Errorf("far left = %d, want 0", far)
	}
	if far, _, _, _ := got.At(19, 2); far != 255 {
		t.Errorf("far right = %d, want 255", far)
	}
}

func TestGaussianBlurParallelMatchesSerial(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	src := createSplit(t, 64, 96)
	for y := range 96 {
		src.Set(y%64, y, byte(y*2), 10, 240, 255)
	}

	serial := GaussianBlur(nil, src, 1.5)
	banded := GaussianBlur(pool, src, 1.5)
	if !bytes.Equal(serial.Pix, banded.Pix) {
		t.Error("parallel blur differs from serial blur")
	}
}

func BenchmarkGaussianBlur(b *testing.B) {
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	src := createSolid(b, 1024, 768, 100, 150, 200, 255)
	b.ResetTimer()
	for range b.N {
		GaussianBlur(pool, src, 3)
	}
}
