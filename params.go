package retouch

import (
	"errors"

	"github.com/samber/lo"
)

// Params is a snapshot of every adjustment the pipeline can apply. The
// zero value is neutral: Apply with Params{} returns an unchanged copy.
//
// Values are in engine units; see the individual operators for ranges.
type Params struct {
	Brightness     int            `yaml:"brightness,omitempty" toml:"brightness"`
	Contrast       float64        `yaml:"contrast,omitempty" toml:"contrast"`
	Saturation     float64        `yaml:"saturation,omitempty" toml:"saturation"`
	Temperature    float64        `yaml:"temperature,omitempty" toml:"temperature"`
	Hue            float64        `yaml:"hue,omitempty" toml:"hue"`
	Exposure       float64        `yaml:"exposure,omitempty" toml:"exposure"`
	Vibrance       float64        `yaml:"vibrance,omitempty" toml:"vibrance"`
	Highlights     float64        `yaml:"highlights,omitempty" toml:"highlights"`
	Shadows        float64        `yaml:"shadows,omitempty" toml:"shadows"`
	Curves         CurveGammas    `yaml:"curves,omitempty" toml:"curves"`
	Levels         LevelsParams   `yaml:"levels,omitempty" toml:"levels"`
	Blur           float64        `yaml:"blur,omitempty" toml:"blur"`
	Sharpen        float64        `yaml:"sharpen,omitempty" toml:"sharpen"`
	Vignette       VignetteParams `yaml:"vignette,omitempty" toml:"vignette"`
	NoiseReduction float64        `yaml:"noise_reduction,omitempty" toml:"noise_reduction"`
}

// DefaultParams returns the neutral parameter set with every field spelled
// out (gammas of 1, levels 0..255).
func DefaultParams() Params {
	return Params{
		Curves: CurveGammas{R: 1, G: 1, B: 1},
		Levels: LevelsParams{Black: 0, White: 255, Gamma: 1},
	}
}

// Validate checks every field against its range and returns all
// violations joined. Each one matches ErrInvalidParameter.
func (p Params) Validate() error {
	return errors.Join(
		checkRange("brightness", "value", float64(p.Brightness), -MaxBrightness, MaxBrightness),
		checkRange("contrast", "value", p.Contrast, MinContrast, MaxContrast),
		checkRange("saturation", "value", p.Saturation, MinSaturation, MaxSaturation),
		checkRange("temperature", "value", p.Temperature, -MaxTemperature, MaxTemperature),
		checkRange("hue", "degrees", p.Hue, -MaxHueShift, MaxHueShift),
		checkRange("exposure", "stops", p.Exposure, -MaxExposure, MaxExposure),
		checkRange("vibrance", "amount", p.Vibrance, -MaxVibrance, MaxVibrance),
		checkRange("highlights", "amount", p.Highlights, -MaxHighlights, MaxHighlights),
		checkRange("shadows", "amount", p.Shadows, -MaxShadows, MaxShadows),
		p.Curves.validate(),
		p.Levels.validate(),
		checkRange("blur", "sigma", p.Blur, 0, MaxBlurSigma),
		checkRange("sharpen", "amount", p.Sharpen, 0, MaxSharpen),
		p.Vignette.validate(),
		checkRange("noise reduction", "strength", p.NoiseReduction, 0, MaxNoiseReduction),
	)
}

// IsNeutral reports whether no stage would run.
func (p Params) IsNeutral() bool {
	return len(p.ActiveStages()) == 0
}

// ActiveStages returns, in pipeline order, the stages p enables.
func (p Params) ActiveStages() []Stage {
	return lo.FilterMap(stageTable, func(s stageDef, _ int) (Stage, bool) {
		return s.stage, s.active(p)
	})
}
