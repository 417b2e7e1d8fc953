package retouch

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retouch.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
workers = 3
parallelism = 8
log_level = "debug"
presets = "/var/lib/retouch/presets.yaml"
default_format = "webp"
quality = 75
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{
		Workers:       3,
		Parallelism:   8,
		LogLevel:      "debug",
		Presets:       "/var/lib/retouch/presets.yaml",
		DefaultFormat: "webp",
		Quality:       75,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level = %v, %v", level, err)
	}
	format, err := cfg.Format()
	if err != nil || format != WebP {
		t.Errorf("Format = %v, %v", format, err)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "quality = 60\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Quality = 60
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      "workers = [",
		"unknown key": "threads = 4\n",
		"bad workers": "workers = 0\n",
		"bad format":  "default_format = \"xcf\"\n",
		"bad level":   "log_level = \"loud\"\n",
		"bad quality": "quality = 150\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assertErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 3
	cfg.Parallelism = 1

	o := defaultOptions()
	for _, opt := range cfg.Options() {
		opt(&o)
	}
	if o.workers != 3 || o.parallelism != 1 {
		t.Errorf("options = %+v", o)
	}
}
