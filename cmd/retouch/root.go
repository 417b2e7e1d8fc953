package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
	"github.com/gogpu/retouch/preset"
)

// app carries the state shared by all subcommands once the root command
// has loaded the configuration.
type app struct {
	configPath  string
	logLevel    string
	presetsPath string
	format      string
	quality     int

	cfg retouch.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "retouch",
		Short:        "Photo adjustments from the command line",
		Version:      retouch.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "TOML configuration file")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	f.StringVar(&a.presetsPath, "presets", "", "preset file (overrides config)")
	f.StringVar(&a.format, "format", "", "output format (default: from the output extension, then config)")
	f.IntVar(&a.quality, "quality", 0, "quality 1-100 for lossy formats (default: config)")

	cmd.AddCommand(
		newApplyCmd(a),
		newHistogramCmd(a),
		newRotateCmd(a),
		newFlipCmd(a),
		newCropCmd(a),
		newResizeCmd(a),
		newEffectCmd(a),
		newPresetCmd(a),
	)
	return cmd
}

// setup loads the configuration and installs the logger.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := retouch.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.presetsPath != "" {
		cfg.Presets = a.presetsPath
	}
	if a.quality != 0 {
		cfg.Quality = a.quality
	}
	if a.format != "" {
		cfg.DefaultFormat = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	retouch.SetLogger(a.log)
	return nil
}

// presets opens the configured preset file, defaulting to the user
// configuration directory.
func (a *app) presets() (*preset.Store, error) {
	path := a.cfg.Presets
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate preset file: %w", err)
		}
		path = filepath.Join(dir, "retouch", "presets.yaml")
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return preset.Open(path)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
