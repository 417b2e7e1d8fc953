package retouch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/samber/lo"

	"github.com/gogpu/retouch/internal/parallel"
)

// Stage identifies one operator of the adjustment pipeline.
type Stage uint8

// Pipeline stages in the order they run.
const (
	StageNone Stage = iota
	StageBrightness
	StageContrast
	StageSaturation
	StageTemperature
	StageHue
	StageExposure
	StageVibrance
	StageHighlights
	StageShadows
	StageCurves
	StageLevels
	StageBlur
	StageSharpen
	StageVignette
	StageNoiseReduction
)

// String returns the stage name as used in logs and configuration.
func (s Stage) String() string {
	if d, ok := stageByID(s); ok {
		return d.name
	}
	return "none"
}

// Label returns a human-readable description of the stage.
func (s Stage) Label() string {
	if d, ok := stageByID(s); ok {
		return d.label
	}
	return "No adjustments"
}

type stageDef struct {
	stage  Stage
	name   string
	label  string
	active func(p Params) bool
	apply  func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error)
}

// stageTable is the canonical pipeline order.
var stageTable = []stageDef{
	{
		stage: StageBrightness, name: "brightness", label: "Adjusting brightness",
		active: func(p Params) bool { return p.Brightness != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return brightness(pool, r, p.Brightness)
		},
	},
	{
		stage: StageContrast, name: "contrast", label: "Adjusting contrast",
		active: func(p Params) bool { return p.Contrast != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return contrast(pool, r, p.Contrast)
		},
	},
	{
		stage: StageSaturation, name: "saturation", label: "Adjusting saturation",
		active: func(p Params) bool { return p.Saturation != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return saturation(pool, r, p.Saturation)
		},
	},
	{
		stage: StageTemperature, name: "temperature", label: "Balancing white",
		active: func(p Params) bool { return p.Temperature != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return whiteBalance(pool, r, p.Temperature)
		},
	},
	{
		stage: StageHue, name: "hue", label: "Shifting hue",
		active: func(p Params) bool { return p.Hue != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return hue(pool, r, p.Hue)
		},
	},
	{
		stage: StageExposure, name: "exposure", label: "Adjusting exposure",
		active: func(p Params) bool { return p.Exposure != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return exposure(pool, r, p.Exposure)
		},
	},
	{
		stage: StageVibrance, name: "vibrance", label: "Adjusting vibrance",
		active: func(p Params) bool { return p.Vibrance != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return vibrance(pool, r, p.Vibrance)
		},
	},
	{
		stage: StageHighlights, name: "highlights", label: "Adjusting highlights",
		active: func(p Params) bool { return p.Highlights != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return highlights(pool, r, p.Highlights)
		},
	},
	{
		stage: StageShadows, name: "shadows", label: "Adjusting shadows",
		active: func(p Params) bool { return p.Shadows != 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return shadows(pool, r, p.Shadows)
		},
	},
	{
		stage: StageCurves, name: "curves", label: "Applying curves",
		active: func(p Params) bool { return !p.Curves.IsNeutral() },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return curves(pool, r, p.Curves)
		},
	},
	{
		stage: StageLevels, name: "levels", label: "Applying levels",
		active: func(p Params) bool { return !p.Levels.IsNeutral() },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return applyLevels(pool, r, p.Levels)
		},
	},
	{
		stage: StageBlur, name: "blur", label: "Blurring",
		active: func(p Params) bool { return p.Blur > 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return gaussianBlur(pool, r, p.Blur)
		},
	},
	{
		stage: StageSharpen, name: "sharpen", label: "Sharpening",
		active: func(p Params) bool { return p.Sharpen > 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return sharpen(pool, r, p.Sharpen)
		},
	},
	{
		stage: StageVignette, name: "vignette", label: "Applying vignette",
		active: func(p Params) bool { return p.Vignette.Strength > 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return vignette(pool, r, p.Vignette)
		},
	},
	{
		stage: StageNoiseReduction, name: "noise-reduction", label: "Reducing noise",
		active: func(p Params) bool { return p.NoiseReduction > 0 },
		apply: func(pool *parallel.WorkerPool, r *Raster, p Params) (*Raster, error) {
			return noiseReduction(pool, r, p.NoiseReduction)
		},
	},
}

func stageByID(s Stage) (stageDef, bool) {
	if s == StageNone || int(s) > len(stageTable) {
		return stageDef{}, false
	}
	return stageTable[s-1], true
}

// Stages returns every pipeline stage in execution order.
func Stages() []Stage {
	return lo.Map(stageTable, func(d stageDef, _ int) Stage { return d.stage })
}

// ParseStage converts a stage name such as "noise-reduction" to a Stage.
func ParseStage(name string) (Stage, error) {
	d, ok := lo.Find(stageTable, func(d stageDef) bool { return d.name == name })
	if !ok {
		return StageNone, &OpError{Op: "pipeline", Err: fmt.Errorf("%w: unknown stage %q", ErrInvalidParameter, name)}
	}
	return d.stage, nil
}

// Progress is reported after each completed pipeline stage.
type Progress struct {
	// Completed and Total count active stages. Total is at least 1.
	Completed int
	Total     int

	// Fraction is Completed/Total, in (0, 1].
	Fraction float64

	Stage Stage
	Label string
}

// ProgressFunc receives pipeline progress. It runs on the goroutine that
// executes the pipeline and should return quickly.
type ProgressFunc func(Progress)

// Apply runs every active stage of p over r, in pipeline order, and
// returns the final raster. r is not modified.
//
// ctx is checked before each stage and once more after the last; a stage
// that has started always runs to completion, but its output is dropped
// if ctx was cancelled meanwhile. A cancelled run returns an error
// matching ErrCancelled. onProgress may be nil.
func Apply(ctx context.Context, r *Raster, p Params, onProgress ProgressFunc) (*Raster, error) {
	return runPipeline(ctx, nil, r, p, false, onProgress)
}

func runPipeline(ctx context.Context, pool *parallel.WorkerPool, r *Raster, p Params, yield bool, report ProgressFunc) (*Raster, error) {
	if err := r.validate("pipeline"); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if report == nil {
		report = func(Progress) {}
	}

	active := lo.Filter(stageTable, func(d stageDef, _ int) bool { return d.active(p) })
	if len(active) == 0 {
		if ctx.Err() != nil {
			return nil, cancelError(ctx)
		}
		report(Progress{Completed: 1, Total: 1, Fraction: 1, Stage: StageNone, Label: StageNone.Label()})
		return r.Clone(), nil
	}

	cur := r
	n := len(active)
	for i, d := range active {
		if ctx.Err() != nil {
			return nil, cancelError(ctx)
		}
		out, err := d.apply(pool, cur, p)
		if err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, cancelError(ctx)
		}
		cur = out
		report(Progress{
			Completed: i + 1,
			Total:     n,
			Fraction:  float64(i+1) / float64(n),
			Stage:     d.stage,
			Label:     d.label,
		})
		if yield && i < n-1 {
			runtime.Gosched()
		}
	}
	return cur, nil
}

// cancelError turns the cancellation cause of ctx into an error matching
// ErrCancelled as well as the cause itself.
func cancelError(ctx context.Context) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, ErrCancelled) {
		return cause
	}
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
