package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/retouch"
)

type applyOptions struct {
	preset    string
	output    string
	outputDir string
	suffix    string
	jobs      int
	params    retouch.Params
}

func newApplyCmd(a *app) *cobra.Command {
	o := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply [flags] IMAGE...",
		Short: "Run the adjustment pipeline over one or more images",
		Long: `Apply runs the adjustment pipeline over every IMAGE, up to --jobs at a time.

Adjustments come from --preset, overridden by any adjustment flag given.
Results are written next to each input with --suffix appended, or into
--output-dir, or to --output when there is a single input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runApply(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.preset, "preset", "", "start from the named preset")
	f.StringVarP(&o.output, "output", "o", "", "output file (single input only)")
	f.StringVar(&o.outputDir, "output-dir", "", "directory for results (default: next to each input)")
	f.StringVar(&o.suffix, "suffix", "_edited", "suffix added to result file names")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "images processed at once (default: config workers)")
	addParamFlags(cmd, &o.params)
	return cmd
}

func (a *app) runApply(cmd *cobra.Command, o *applyOptions, inputs []string) error {
	if o.output != "" && len(inputs) > 1 {
		return errors.New("--output needs exactly one input; use --output-dir")
	}
	params, err := a.applyParams(cmd, o)
	if err != nil {
		return err
	}

	jobs := o.jobs
	if jobs <= 0 {
		jobs = a.cfg.Workers
	}
	opts := append(a.cfg.Options(), retouch.WithWorkers(jobs), retouch.WithLogger(a.log))
	eng, err := retouch.NewEngine(opts...)
	if err != nil {
		return err
	}
	defer eng.Close()

	targets := make([]string, len(inputs))
	for i, in := range inputs {
		if targets[i], err = a.applyOutput(o, in); err != nil {
			return err
		}
	}

	outputs := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, in := range inputs {
		out := targets[i]
		g.Go(func() error {
			r, err := readRaster(in)
			if err != nil {
				return err
			}
			// Inputs may repeat; a slot per position keeps them from
			// superseding each other.
			task, err := eng.Process(strconv.Itoa(i), r, params)
			if err != nil {
				return err
			}
			res, err := task.Wait(ctx)
			if err != nil {
				task.Cancel()
				return fmt.Errorf("%s: %w", in, err)
			}
			if err := a.writeRaster(res, out); err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	err = g.Wait()

	w := cmd.OutOrStdout()
	for i, out := range outputs {
		if out != "" {
			fmt.Fprintf(w, "%s -> %s\n", inputs[i], out)
		}
	}
	return err
}

// applyParams resolves the preset, if any, and overlays the flags.
func (a *app) applyParams(cmd *cobra.Command, o *applyOptions) (retouch.Params, error) {
	base := retouch.Params{}
	if o.preset != "" {
		store, err := a.presets()
		if err != nil {
			return retouch.Params{}, err
		}
		p, err := store.Get(o.preset)
		if err != nil {
			return retouch.Params{}, err
		}
		base = p.Params
	}
	params := overlayParams(cmd, base, o.params)
	if err := params.Validate(); err != nil {
		return retouch.Params{}, err
	}
	return params, nil
}

func (a *app) applyOutput(o *applyOptions, in string) (string, error) {
	if o.output != "" {
		return o.output, nil
	}
	ext := filepath.Ext(in)
	if a.format != "" {
		f, err := retouch.ParseFormat(a.format)
		if err != nil {
			return "", err
		}
		ext = f.Extension()
	}
	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + o.suffix + ext
	dir := o.outputDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, name), nil
}
