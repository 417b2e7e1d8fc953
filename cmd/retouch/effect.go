package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

var effects = map[string]func(*retouch.Raster) (*retouch.Raster, error){
	"grayscale": retouch.Grayscale,
	"sepia":     retouch.Sepia,
	"emboss":    retouch.Emboss,
	"equalize":  retouch.EqualizeHistogram,
}

func newEffectCmd(a *app) *cobra.Command {
	names := lo.Keys(effects)
	slices.Sort(names)
	return &cobra.Command{
		Use:       "effect NAME IN OUT",
		Short:     "Apply a one-shot effect: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(3),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			fn, ok := effects[args[0]]
			if !ok {
				return fmt.Errorf("unknown effect %q (want one of %s)", args[0], strings.Join(names, ", "))
			}
			return a.transform(args[1], args[2], fn)
		},
	}
}
