package retouch

import (
	"errors"
	"fmt"

	"github.com/gogpu/retouch/internal/color"
	"github.com/gogpu/retouch/internal/filter"
	"github.com/gogpu/retouch/internal/parallel"
)

// Tone parameter ranges.
const (
	MaxHighlights = 100.0
	MaxShadows    = 100.0
	MinGamma      = 0.1
	MaxGamma      = 3.0
)

// CurveGammas holds one gamma per colour channel. Each channel maps
// through out = 255 * (in/255)^(1/gamma): values above 1 brighten the
// midtones, values below 1 darken them. A zero field means 1 (unchanged).
type CurveGammas struct {
	R float64 `yaml:"r,omitempty" toml:"r"`
	G float64 `yaml:"g,omitempty" toml:"g"`
	B float64 `yaml:"b,omitempty" toml:"b"`
}

func (c CurveGammas) normalized() CurveGammas {
	return CurveGammas{R: orDefault(c.R, 1), G: orDefault(c.G, 1), B: orDefault(c.B, 1)}
}

// IsNeutral reports whether every channel gamma is 1.
func (c CurveGammas) IsNeutral() bool {
	n := c.normalized()
	return n.R == 1 && n.G == 1 && n.B == 1
}

func (c CurveGammas) validate() error {
	n := c.normalized()
	return errors.Join(
		checkRange("curves", "red gamma", n.R, MinGamma, MaxGamma),
		checkRange("curves", "green gamma", n.G, MinGamma, MaxGamma),
		checkRange("curves", "blue gamma", n.B, MinGamma, MaxGamma),
	)
}

// LevelsParams remaps [Black, White] to [0, 255] with a midtone gamma.
// A zero White means 255 and a zero Gamma means 1.
type LevelsParams struct {
	Black int     `yaml:"black,omitempty" toml:"black"`
	White int     `yaml:"white,omitempty" toml:"white"`
	Gamma float64 `yaml:"gamma,omitempty" toml:"gamma"`
}

func (l LevelsParams) normalized() LevelsParams {
	if l.White == 0 {
		l.White = 255
	}
	l.Gamma = orDefault(l.Gamma, 1)
	return l
}

// IsNeutral reports whether the levels map every value to itself.
func (l LevelsParams) IsNeutral() bool {
	n := l.normalized()
	return n.Black == 0 && n.White == 255 && n.Gamma == 1
}

func (l LevelsParams) validate() error {
	const op = "levels"
	n := l.normalized()
	err := errors.Join(
		checkRange(op, "black", float64(n.Black), 0, 254),
		checkRange(op, "white", float64(n.White), 1, 255),
		checkRange(op, "gamma", n.Gamma, MinGamma, MaxGamma),
	)
	if err == nil && n.Black >= n.White {
		err = &OpError{Op: op, Err: fmt.Errorf("%w: black %d >= white %d", ErrInvalidParameter, n.Black, n.White)}
	}
	return err
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Highlights brightens (positive) or recovers (negative) the bright parts
// of the image. Pixels at or below mid-grey luma are untouched; the effect
// ramps in smoothly toward white. amount is in [-100, 100].
func Highlights(r *Raster, amount float64) (*Raster, error) {
	return highlights(nil, r, amount)
}

func highlights(pool *parallel.WorkerPool, r *Raster, amount float64) (*Raster, error) {
	const op = "highlights"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "amount", amount, -MaxHighlights, MaxHighlights); err != nil {
		return nil, err
	}
	if amount == 0 {
		return r.Clone(), nil
	}
	f := amount / MaxHighlights
	return wrap(mapRGB(pool, r.buf, func(red, green, blue uint8) (uint8, uint8, uint8) {
		m := color.Smoothstep(0.5, 1, color.Luma(red, green, blue))
		if m == 0 {
			return red, green, blue
		}
		return shiftTone(red, f*m), shiftTone(green, f*m), shiftTone(blue, f*m)
	})), nil
}

// Shadows lifts (positive) or deepens (negative) the dark parts of the
// image. Pixels at or above mid-grey luma are untouched. amount is in
// [-100, 100].
func Shadows(r *Raster, amount float64) (*Raster, error) {
	return shadows(nil, r, amount)
}

func shadows(pool *parallel.WorkerPool, r *Raster, amount float64) (*Raster, error) {
	const op = "shadows"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "amount", amount, -MaxShadows, MaxShadows); err != nil {
		return nil, err
	}
	if amount == 0 {
		return r.Clone(), nil
	}
	f := amount / MaxShadows
	return wrap(mapRGB(pool, r.buf, func(red, green, blue uint8) (uint8, uint8, uint8) {
		m := 1 - color.Smoothstep(0, 0.5, color.Luma(red, green, blue))
		if m == 0 {
			return red, green, blue
		}
		return shiftTone(red, f*m), shiftTone(green, f*m), shiftTone(blue, f*m)
	})), nil
}

// shiftTone moves c toward white for positive k and toward black for
// negative k, by the fraction |k| of the remaining distance.
func shiftTone(c uint8, k float64) uint8 {
	v := color.Unit(c)
	if k > 0 {
		v += k * (1 - v)
	} else {
		v += k * v
	}
	return color.FromUnit(v)
}

// Curves applies a gamma curve to each colour channel.
// Each gamma is in [0.1, 3]; zero means 1.
func Curves(r *Raster, gammas CurveGammas) (*Raster, error) {
	return curves(nil, r, gammas)
}

func curves(pool *parallel.WorkerPool, r *Raster, gammas CurveGammas) (*Raster, error) {
	if err := r.validate("curves"); err != nil {
		return nil, err
	}
	if err := gammas.validate(); err != nil {
		return nil, err
	}
	if gammas.IsNeutral() {
		return r.Clone(), nil
	}
	g := gammas.normalized()
	return wrap(color.ApplyLUT(pool, r.buf, gammaLUT(g.R), gammaLUT(g.G), gammaLUT(g.B))), nil
}

// Levels remaps the input range [Black, White] to [0, 255] and applies the
// midtone gamma:
//
//	out = 255 * clamp((in - black) / (white - black), 0, 1)^(1/gamma)
//
// Black must be below White; Gamma is in [0.1, 3].
func Levels(r *Raster, levels LevelsParams) (*Raster, error) {
	return applyLevels(nil, r, levels)
}

func applyLevels(pool *parallel.WorkerPool, r *Raster, levels LevelsParams) (*Raster, error) {
	if err := r.validate("levels"); err != nil {
		return nil, err
	}
	if err := levels.validate(); err != nil {
		return nil, err
	}
	if levels.IsNeutral() {
		return r.Clone(), nil
	}
	lut := levelsLUT(levels.normalized())
	return wrap(color.ApplyLUT(pool, r.buf, lut, lut, lut)), nil
}

// Grayscale replaces R, G and B with Rec. 601 luma (0.299, 0.587, 0.114).
func Grayscale(r *Raster) (*Raster, error) {
	if err := r.validate("grayscale"); err != nil {
		return nil, err
	}
	return wrap(filter.ApplyMatrix(nil, r.buf, filter.GrayscaleMatrix())), nil
}

// Sepia converts to grayscale and tints the result warm brown.
func Sepia(r *Raster) (*Raster, error) {
	if err := r.validate("sepia"); err != nil {
		return nil, err
	}
	m := filter.GrayscaleMatrix().Then(filter.SepiaTintMatrix())
	return wrap(filter.ApplyMatrix(nil, r.buf, m)), nil
}
