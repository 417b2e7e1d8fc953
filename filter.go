package retouch

import (
	"github.com/gogpu/retouch/internal/filter"
	"github.com/gogpu/retouch/internal/parallel"
)

// Spatial filter ranges.
const (
	MaxBlurSigma      = 100.0
	MaxSharpen        = 1.0
	MaxVignette       = 100.0
	MaxNoiseReduction = 100.0
)

// VignetteParams controls the corner darkening of Vignette.
type VignetteParams struct {
	// Strength is the darkening at the corners, in [0, 100].
	Strength float64 `yaml:"strength,omitempty" toml:"strength"`

	// Radius is the share of the centre-to-corner distance, in [0, 100],
	// that stays untouched.
	Radius float64 `yaml:"radius,omitempty" toml:"radius"`
}

// GaussianBlur blurs all four channels with a Gaussian of standard
// deviation sigma in [0, 100]. The kernel spans ceil(3*sigma) pixels on
// each side; pixels beyond the border repeat the edge.
func GaussianBlur(r *Raster, sigma float64) (*Raster, error) {
	return gaussianBlur(nil, r, sigma)
}

func gaussianBlur(pool *parallel.WorkerPool, r *Raster, sigma float64) (*Raster, error) {
	const op = "blur"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "sigma", sigma, 0, MaxBlurSigma); err != nil {
		return nil, err
	}
	if sigma == 0 {
		return r.Clone(), nil
	}
	return wrap(filter.GaussianBlur(pool, r.buf, sigma)), nil
}

// Sharpen applies an unsharp mask: each colour channel moves away from a
// Gaussian-blurred copy of itself by amount in [0, 1].
func Sharpen(r *Raster, amount float64) (*Raster, error) {
	return sharpen(nil, r, amount)
}

func sharpen(pool *parallel.WorkerPool, r *Raster, amount float64) (*Raster, error) {
	const op = "sharpen"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "amount", amount, 0, MaxSharpen); err != nil {
		return nil, err
	}
	if amount == 0 {
		return r.Clone(), nil
	}
	return wrap(filter.Unsharp(pool, r.buf, float32(amount))), nil
}

// Emboss convolves the colour channels with a directional relief kernel
// and offsets the result to mid-grey, so flat areas become 128. Alpha is
// kept.
func Emboss(r *Raster) (*Raster, error) {
	if err := r.validate("emboss"); err != nil {
		return nil, err
	}
	return wrap(filter.Convolve3x3(nil, r.buf, filter.EmbossKernel, 128)), nil
}

// Vignette darkens the image toward its corners.
func Vignette(r *Raster, v VignetteParams) (*Raster, error) {
	return vignette(nil, r, v)
}

func vignette(pool *parallel.WorkerPool, r *Raster, v VignetteParams) (*Raster, error) {
	const op = "vignette"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	if v.Strength == 0 {
		return r.Clone(), nil
	}
	return wrap(filter.Vignette(pool, r.buf, float32(v.Strength/100), float32(v.Radius/100))), nil
}

func (v VignetteParams) validate() error {
	if err := checkRange("vignette", "strength", v.Strength, 0, MaxVignette); err != nil {
		return err
	}
	return checkRange("vignette", "radius", v.Radius, 0, MaxVignette)
}

// NoiseReduction smooths noise with an edge-preserving bilateral filter.
// strength in [0, 100] widens both the window and the colour tolerance.
func NoiseReduction(r *Raster, strength float64) (*Raster, error) {
	return noiseReduction(nil, r, strength)
}

func noiseReduction(pool *parallel.WorkerPool, r *Raster, strength float64) (*Raster, error) {
	const op = "noise reduction"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "strength", strength, 0, MaxNoiseReduction); err != nil {
		return nil, err
	}
	if strength == 0 {
		return r.Clone(), nil
	}
	return wrap(filter.Bilateral(pool, r.buf, filter.BilateralFor(float32(strength/100)))), nil
}
