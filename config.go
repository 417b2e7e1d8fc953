package retouch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration shared by the engine and the
// command-line tool. It is read from TOML:
//
//	workers = 2
//	parallelism = 0
//	log_level = "info"
//	presets = "~/.config/retouch/presets.yaml"
//	default_format = "png"
//	quality = 90
//
// The command-line tool expands a leading "~" in presets.
type Config struct {
	Workers       int    `toml:"workers"`
	Parallelism   int    `toml:"parallelism"`
	LogLevel      string `toml:"log_level"`
	Presets       string `toml:"presets"`
	DefaultFormat string `toml:"default_format"`
	Quality       int    `toml:"quality"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Workers:       DefaultWorkers,
		Parallelism:   0,
		LogLevel:      "warn",
		DefaultFormat: PNG.String(),
		Quality:       DefaultQuality,
	}
}

// LoadConfig reads a TOML file over DefaultConfig. A missing file is not
// an error. Unknown keys and invalid values fail with ErrInvalidParameter.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, &OpError{Op: "config", Err: fmt.Errorf("%w: %w", ErrInvalidParameter, err)}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, &OpError{Op: "config", Err: fmt.Errorf("%w: unknown key %q", ErrInvalidParameter, undecoded[0].String())}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers = %d", ErrInvalidParameter, c.Workers))
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("%w: parallelism = %d", ErrInvalidParameter, c.Parallelism))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.DefaultFormat != "" {
		if _, err := ParseFormat(c.DefaultFormat); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Quality < 0 || c.Quality > 100 {
		errs = append(errs, fmt.Errorf("%w: quality = %d", ErrInvalidParameter, c.Quality))
	}
	if len(errs) == 0 {
		return nil
	}
	return &OpError{Op: "config", Err: errors.Join(errs...)}
}

// Level parses LogLevel. An empty level means warn.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level = %q", ErrInvalidParameter, c.LogLevel)
	}
	return l, nil
}

// Format returns DefaultFormat parsed, or PNG when it is empty.
func (c Config) Format() (Format, error) {
	if c.DefaultFormat == "" {
		return PNG, nil
	}
	return ParseFormat(c.DefaultFormat)
}

// Options converts the engine settings to EngineOptions.
func (c Config) Options() []EngineOption {
	return []EngineOption{
		WithWorkers(c.Workers),
		WithParallelism(c.Parallelism),
	}
}
