package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/retouch"
)

func readRaster(path string) (*retouch.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := retouch.DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// outputFormat picks the format for path: --format wins, then the file
// extension, then the configured default for paths without one.
func (a *app) outputFormat(path string) (retouch.Format, error) {
	if a.format != "" {
		return retouch.ParseFormat(a.format)
	}
	if filepath.Ext(path) == "" {
		return a.cfg.Format()
	}
	return retouch.FormatFromPath(path)
}

func (a *app) writeRaster(r *retouch.Raster, path string) error {
	format, err := a.outputFormat(path)
	if err != nil {
		return err
	}
	if a.quality != 0 && !format.Lossy() {
		a.log.Warn("retouch: quality ignored for lossless format", "path", path, "format", format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := retouch.EncodeTo(f, r, format, a.cfg.Quality); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Debug("retouch: wrote image", "path", path, "format", format, "width", r.Width(), "height", r.Height())
	return nil
}

// transform is the shape shared by the single-image commands: read in,
// apply fn, write out.
func (a *app) transform(in, out string, fn func(*retouch.Raster) (*retouch.Raster, error)) error {
	r, err := readRaster(in)
	if err != nil {
		return err
	}
	res, err := fn(r)
	if err != nil {
		return err
	}
	return a.writeRaster(res, out)
}
