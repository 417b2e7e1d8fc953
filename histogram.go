package retouch

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/retouch/internal/color"
)

// Histogram counts pixels per value for each colour channel. Counts are
// not normalised and alpha is ignored. A Raster holds at most MaxPixels
// pixels, so no uint32 bucket can overflow.
type Histogram struct {
	R [256]uint32
	G [256]uint32
	B [256]uint32
}

// ComputeHistogram counts the channel values of every pixel of r.
func ComputeHistogram(r *Raster) (*Histogram, error) {
	if err := r.validate("histogram"); err != nil {
		return nil, err
	}
	h := &Histogram{}
	pix := r.buf.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		h.R[pix[i]]++
		h.G[pix[i+1]]++
		h.B[pix[i+2]]++
	}
	return h, nil
}

// Flat returns the 768 counts as R[0..255], G[0..255], B[0..255].
func (h *Histogram) Flat() []uint32 {
	out := make([]uint32, 0, 768)
	out = append(out, h.R[:]...)
	out = append(out, h.G[:]...)
	return append(out, h.B[:]...)
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, c := range h.R {
		n += uint64(c)
	}
	return n
}

// Channel returns the counts of channel 0 (R), 1 (G) or 2 (B).
func (h *Histogram) Channel(i int) *[256]uint32 {
	switch i {
	case 0:
		return &h.R
	case 1:
		return &h.G
	default:
		return &h.B
	}
}

// ChannelStats summarises one channel of a Histogram.
type ChannelStats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    int
	Max    int
}

// values holds 0..255 as float64 for the weighted statistics.
var values = func() []float64 {
	v := make([]float64, 256)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}()

// Stats returns the mean, standard deviation, median and value range of
// each channel in R, G, B order. An empty histogram yields zero stats.
func (h *Histogram) Stats() [3]ChannelStats {
	var out [3]ChannelStats
	if h.Total() == 0 {
		return out
	}
	for c := range 3 {
		counts := h.Channel(c)
		weights := make([]float64, 256)
		lo, hi := -1, 0
		for i, n := range counts {
			weights[i] = float64(n)
			if n > 0 {
				if lo < 0 {
					lo = i
				}
				hi = i
			}
		}
		mean, std := stat.MeanStdDev(values, weights)
		if math.IsNaN(std) {
			std = 0
		}
		out[c] = ChannelStats{
			Mean:   mean,
			StdDev: std,
			Median: stat.Quantile(0.5, stat.Empirical, values, weights),
			Min:    lo,
			Max:    hi,
		}
	}
	return out
}

// EqualizeHistogram spreads each colour channel over the full [0, 255]
// range using its cumulative distribution:
//
//	out = round((cdf(v) - cdfMin) / (N - cdfMin) * 255)
//
// A channel in which every pixel has the same value is left unchanged.
// Alpha is copied.
func EqualizeHistogram(r *Raster) (*Raster, error) {
	h, err := ComputeHistogram(r)
	if err != nil {
		return nil, &OpError{Op: "equalize", Err: ErrInvalidDimensions}
	}
	total := h.Total()

	var luts [3]color.LUT
	for c := range 3 {
		luts[c] = equalizeLUT(h.Channel(c), total)
	}
	return wrap(color.ApplyLUT(nil, r.buf, &luts[0], &luts[1], &luts[2])), nil
}

func equalizeLUT(counts *[256]uint32, total uint64) color.LUT {
	var cdfMin uint64
	for _, n := range counts {
		if n > 0 {
			cdfMin = uint64(n)
			break
		}
	}
	if total == cdfMin {
		return color.IdentityLUT()
	}

	var lut color.LUT
	var cdf uint64
	scale := 255 / float64(total-cdfMin)
	for i, n := range counts {
		cdf += uint64(n)
		if cdf < cdfMin {
			continue
		}
		lut[i] = color.ClampByte(float64(cdf-cdfMin) * scale)
	}
	return lut
}
