package retouch

import (
	"math"

	"github.com/gogpu/retouch/internal/cache"
	"github.com/gogpu/retouch/internal/color"
)

// lutKind distinguishes the cached lookup-table families.
type lutKind uint8

const (
	lutGamma lutKind = iota
	lutLevels
	lutExposure
)

type lutKey struct {
	kind    lutKind
	a, b, c float64
}

// luts keeps the math.Pow-based tables, which repeat across the slider
// moves of an interactive session.
var luts = cache.New[lutKey, *color.LUT](128)

func cachedLUT(key lutKey, build func() color.LUT) *color.LUT {
	return luts.GetOrCreate(key, func() *color.LUT {
		lut := build()
		return &lut
	})
}

func gammaLUT(gamma float64) *color.LUT {
	return cachedLUT(lutKey{kind: lutGamma, a: gamma}, func() color.LUT {
		if gamma == 1 {
			return color.IdentityLUT()
		}
		inv := 1 / gamma
		return color.BuildLUT(func(v float64) float64 {
			return 255 * math.Pow(v/255, inv)
		})
	})
}

func levelsLUT(l LevelsParams) *color.LUT {
	key := lutKey{kind: lutLevels, a: float64(l.Black), b: float64(l.White), c: l.Gamma}
	return cachedLUT(key, func() color.LUT {
		black := float64(l.Black)
		span := float64(l.White - l.Black)
		inv := 1 / l.Gamma
		return color.BuildLUT(func(v float64) float64 {
			return 255 * math.Pow(clamp01((v-black)/span), inv)
		})
	})
}

func exposureLUT(stops float64) *color.LUT {
	return cachedLUT(lutKey{kind: lutExposure, a: stops}, func() color.LUT {
		gain := float32(math.Exp2(stops))
		var lut color.LUT
		for i := range lut {
			lut[i] = color.LinearToSRGB(color.SRGBToLinear(uint8(i)) * gain)
		}
		return lut
	})
}
