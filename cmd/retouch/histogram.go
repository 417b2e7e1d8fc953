package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

func newHistogramCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "histogram IMAGE",
		Short: "Print per-channel statistics of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRaster(args[0])
			if err != nil {
				return err
			}
			h, err := retouch.ComputeHistogram(r)
			if err != nil {
				return err
			}
			a.log.Debug("retouch: histogram", "path", args[0], "pixels", h.Total())

			w := cmd.OutOrStdout()
			if raw {
				for c, name := range []string{"r", "g", "b"} {
					fmt.Fprint(w, name)
					for _, n := range h.Channel(c) {
						fmt.Fprintf(w, " %d", n)
					}
					fmt.Fprintln(w)
				}
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "channel\tmean\tstddev\tmedian\tmin\tmax\t")
			for c, s := range h.Stats() {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.0f\t%d\t%d\t\n",
					[]string{"red", "green", "blue"}[c], s.Mean, s.StdDev, s.Median, s.Min, s.Max)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the 256 counts of each channel instead")
	return cmd
}
