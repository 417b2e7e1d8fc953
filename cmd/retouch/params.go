package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/retouch"
)

// paramFlag binds one command-line flag to one Params field. Exactly one
// of float and integer is set.
type paramFlag struct {
	name    string
	usage   string
	float   func(*retouch.Params) *float64
	integer func(*retouch.Params) *int
}

func (pf paramFlag) bind(fs *pflag.FlagSet, p *retouch.Params) {
	if pf.float != nil {
		fs.Float64Var(pf.float(p), pf.name, *pf.float(p), pf.usage)
		return
	}
	fs.IntVar(pf.integer(p), pf.name, *pf.integer(p), pf.usage)
}

func (pf paramFlag) copy(dst *retouch.Params, src retouch.Params) {
	if pf.float != nil {
		*pf.float(dst) = *pf.float(&src)
		return
	}
	*pf.integer(dst) = *pf.integer(&src)
}

func floatParam(name, usage string, field func(*retouch.Params) *float64) paramFlag {
	return paramFlag{name: name, usage: usage, float: field}
}

func intParam(name, usage string, field func(*retouch.Params) *int) paramFlag {
	return paramFlag{name: name, usage: usage, integer: field}
}

var paramFlags = []paramFlag{
	intParam("brightness", "brightness offset, -255..255", func(p *retouch.Params) *int { return &p.Brightness }),
	floatParam("contrast", "contrast, -1..2", func(p *retouch.Params) *float64 { return &p.Contrast }),
	floatParam("saturation", "saturation, -1..3", func(p *retouch.Params) *float64 { return &p.Saturation }),
	floatParam("temperature", "white balance, -100 (cool)..100 (warm)", func(p *retouch.Params) *float64 { return &p.Temperature }),
	floatParam("hue", "hue shift in degrees, -180..180", func(p *retouch.Params) *float64 { return &p.Hue }),
	floatParam("exposure", "exposure in stops, -3..3", func(p *retouch.Params) *float64 { return &p.Exposure }),
	floatParam("vibrance", "vibrance, -100..100", func(p *retouch.Params) *float64 { return &p.Vibrance }),
	floatParam("highlights", "highlights, -100..100", func(p *retouch.Params) *float64 { return &p.Highlights }),
	floatParam("shadows", "shadows, -100..100", func(p *retouch.Params) *float64 { return &p.Shadows }),
	floatParam("gamma-r", "red curve gamma, 0.1..3", func(p *retouch.Params) *float64 { return &p.Curves.R }),
	floatParam("gamma-g", "green curve gamma, 0.1..3", func(p *retouch.Params) *float64 { return &p.Curves.G }),
	floatParam("gamma-b", "blue curve gamma, 0.1..3", func(p *retouch.Params) *float64 { return &p.Curves.B }),
	intParam("levels-black", "levels black point, 0..254", func(p *retouch.Params) *int { return &p.Levels.Black }),
	intParam("levels-white", "levels white point, 1..255", func(p *retouch.Params) *int { return &p.Levels.White }),
	floatParam("levels-gamma", "levels midtone gamma, 0.1..3", func(p *retouch.Params) *float64 { return &p.Levels.Gamma }),
	floatParam("blur", "gaussian blur sigma, 0..100", func(p *retouch.Params) *float64 { return &p.Blur }),
	floatParam("sharpen", "sharpen amount, 0..1", func(p *retouch.Params) *float64 { return &p.Sharpen }),
	floatParam("vignette", "vignette strength, 0..100", func(p *retouch.Params) *float64 { return &p.Vignette.Strength }),
	floatParam("vignette-radius", "vignette radius, 0..100", func(p *retouch.Params) *float64 { return &p.Vignette.Radius }),
	floatParam("noise-reduction", "noise reduction strength, 0..100", func(p *retouch.Params) *float64 { return &p.NoiseReduction }),
}

// addParamFlags registers every adjustment flag on cmd, bound to p.
func addParamFlags(cmd *cobra.Command, p *retouch.Params) {
	for _, pf := range paramFlags {
		pf.bind(cmd.Flags(), p)
	}
}

// overlayParams returns base with every adjustment flag set on cmd taken
// from flags.
func overlayParams(cmd *cobra.Command, base, flags retouch.Params) retouch.Params {
	for _, pf := range paramFlags {
		if cmd.Flags().Changed(pf.name) {
			pf.copy(&base, flags)
		}
	}
	return base
}
