package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

func newRotateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate DEGREES IN OUT",
		Short: "Rotate an image clockwise",
		Long: `Rotate turns IN clockwise by DEGREES and writes OUT.

Multiples of 90 are exact. Any other angle rotates about the centre with
bilinear sampling onto a canvas large enough to hold the whole image;
uncovered corners become transparent.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("degrees: %w", err)
			}
			return a.transform(args[1], args[2], func(r *retouch.Raster) (*retouch.Raster, error) {
				return retouch.RotateArbitrary(r, deg)
			})
		},
	}
}

func newFlipCmd(a *app) *cobra.Command {
	var vertical bool
	cmd := &cobra.Command{
		Use:   "flip IN OUT",
		Short: "Mirror an image horizontally, or vertically with --vertical",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			flip := retouch.FlipHorizontal
			if vertical {
				flip = retouch.FlipVertical
			}
			return a.transform(args[0], args[1], flip)
		},
	}
	cmd.Flags().BoolVarP(&vertical, "vertical", "v", false, "flip top to bottom")
	return cmd
}

func newCropCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crop X Y WIDTH HEIGHT IN OUT",
		Short: "Cut a rectangle out of an image",
		Args:  cobra.ExactArgs(6),
		RunE: func(_ *cobra.Command, args []string) error {
			rect, err := parseInts(args[:4], "x", "y", "width", "height")
			if err != nil {
				return err
			}
			return a.transform(args[4], args[5], func(r *retouch.Raster) (*retouch.Raster, error) {
				return retouch.Crop(r, rect[0], rect[1], rect[2], rect[3])
			})
		},
	}
}

func newResizeCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "resize WIDTH HEIGHT IN OUT",
		Short: "Scale an image to a new size",
		Long: `Resize scales IN to WIDTH x HEIGHT. A zero WIDTH or HEIGHT is derived
from the other so the aspect ratio is kept.`,
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			size, err := parseInts(args[:2], "width", "height")
			if err != nil {
				return err
			}
			f, err := retouch.ParseResampleFilter(filter)
			if err != nil {
				return err
			}
			return a.transform(args[2], args[3], func(r *retouch.Raster) (*retouch.Raster, error) {
				w, h := fitSize(r.Width(), r.Height(), size[0], size[1])
				return retouch.ResizeWith(r, w, h, f)
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", retouch.Bilinear.String(),
		"interpolation: nearest, bilinear, bicubic, catmull-rom or lanczos3")
	return cmd
}

// fitSize fills in a zero target dimension from the source aspect ratio.
func fitSize(srcW, srcH, w, h int) (int, int) {
	switch {
	case w == 0 && h > 0:
		w = max(1, (srcW*h+srcH/2)/srcH)
	case h == 0 && w > 0:
		h = max(1, (srcH*w+srcW/2)/srcW)
	}
	return w, h
}

func parseInts(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = v
	}
	return out, nil
}
