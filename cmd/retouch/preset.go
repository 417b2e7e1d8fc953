package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved adjustment presets",
	}
	cmd.AddCommand(newPresetSaveCmd(a), newPresetListCmd(a), newPresetDeleteCmd(a))
	return cmd
}

func newPresetSaveCmd(a *app) *cobra.Command {
	var p retouch.Params
	cmd := &cobra.Command{
		Use:   "save NAME [adjustment flags]",
		Short: "Save the given adjustments under NAME, replacing a preset of the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.presets()
			if err != nil {
				return err
			}
			if err := store.Save(args[0], p); err != nil {
				return err
			}
			a.log.Info("retouch: preset saved", "name", args[0], "path", store.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "saved %q\n", strings.TrimSpace(args[0]))
			return nil
		},
	}
	addParamFlags(cmd, &p)
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets with their index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.presets()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range store.List() {
				stages := lo.Map(p.Params.ActiveStages(), func(s retouch.Stage, _ int) string {
					return s.String()
				})
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, p.Name, strings.Join(stages, ","))
			}
			return nil
		},
	}
}

func newPresetDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the preset at INDEX as shown by list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}
			store, err := a.presets()
			if err != nil {
				return err
			}
			if err := store.Delete(i); err != nil {
				return err
			}
			a.log.Info("retouch: preset deleted", "index", i, "path", store.Path())
			return nil
		},
	}
}
