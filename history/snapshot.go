package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/retouch"
)

// ErrCorrupt is returned when a snapshot's pixels cannot be restored.
var ErrCorrupt = errors.New("history: corrupt snapshot")

// Snapshot is one editor state: a raster stored zstd-compressed plus the
// adjustment parameters that were in effect. Pixels that zstd cannot shrink
// are kept uncompressed. Snapshots are immutable and safe for concurrent
// use.
type Snapshot struct {
	width      int
	height     int
	raw        int
	compressed bool
	data       []byte
	params     retouch.Params
}

var (
	encoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	decoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil)
	})
)

// NewSnapshot compresses r and records p alongside it.
func NewSnapshot(r *retouch.Raster, p retouch.Params) (*Snapshot, error) {
	if r == nil {
		return nil, fmt.Errorf("history: snapshot: %w", retouch.ErrInvalidDimensions)
	}
	enc, err := encoder()
	if err != nil {
		return nil, fmt.Errorf("history: zstd encoder: %w", err)
	}
	pix := r.Pix()
	s := &Snapshot{
		width:      r.Width(),
		height:     r.Height(),
		raw:        len(pix),
		compressed: true,
		data:       enc.EncodeAll(pix, make([]byte, 0, len(pix)/4)),
		params:     p,
	}
	if len(s.data) >= len(pix) {
		s.compressed = false
		s.data = append([]byte(nil), pix...)
	}
	return s, nil
}

// Raster decompresses the stored pixels into a new Raster.
func (s *Snapshot) Raster() (*retouch.Raster, error) {
	pix, err := s.pixels()
	if err != nil {
		return nil, err
	}
	r, err := retouch.RasterFromPix(s.width, s.height, pix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return r, nil
}

func (s *Snapshot) pixels() ([]byte, error) {
	if !s.compressed {
		return append([]byte(nil), s.data...), nil
	}
	dec, err := decoder()
	if err != nil {
		return nil, fmt.Errorf("history: zstd decoder: %w", err)
	}
	pix, err := dec.DecodeAll(s.data, make([]byte, 0, s.raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return pix, nil
}

// Params returns the parameters recorded with the snapshot.
func (s *Snapshot) Params() retouch.Params { return s.params }

// Width returns the raster width in pixels.
func (s *Snapshot) Width() int { return s.width }

// Height returns the raster height in pixels.
func (s *Snapshot) Height() int { return s.height }

// Compressed reports whether the pixels are stored zstd-compressed.
func (s *Snapshot) Compressed() bool { return s.compressed }

// Size returns the stored size in bytes. It never exceeds the raw size.
func (s *Snapshot) Size() int { return len(s.data) }
