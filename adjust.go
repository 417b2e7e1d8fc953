package retouch

import (
	"math"

	"github.com/gogpu/retouch/internal/color"
	imgbuf "github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Parameter ranges of the colour operators.
const (
	MaxBrightness  = 255
	MinContrast    = -1.0
	MaxContrast    = 2.0
	MinSaturation  = -1.0
	MaxSaturation  = 3.0
	MaxTemperature = 100.0
	MaxHueShift    = 180.0
	MaxExposure    = 3.0
	MaxVibrance    = 100.0
)

// Brightness adds value to R, G and B and clamps. value is in [-255, 255].
func Brightness(r *Raster, value int) (*Raster, error) {
	return brightness(nil, r, value)
}

func brightness(pool *parallel.WorkerPool, r *Raster, value int) (*Raster, error) {
	const op = "brightness"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "value", float64(value), -MaxBrightness, MaxBrightness); err != nil {
		return nil, err
	}
	if value == 0 {
		return r.Clone(), nil
	}
	delta := float64(value)
	lut := color.BuildLUT(func(v float64) float64 { return v + delta })
	return wrap(color.ApplyLUT(pool, r.buf, &lut, &lut, &lut)), nil
}

// Contrast scales each colour channel away from mid-grey:
//
//	out = (c - 128) * (1 + value) + 128
//
// value is in [-1, 2]; -1 flattens the image to grey.
func Contrast(r *Raster, value float64) (*Raster, error) {
	return contrast(nil, r, value)
}

func contrast(pool *parallel.WorkerPool, r *Raster, value float64) (*Raster, error) {
	const op = "contrast"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "value", value, MinContrast, MaxContrast); err != nil {
		return nil, err
	}
	if value == 0 {
		return r.Clone(), nil
	}
	factor := 1 + value
	lut := color.BuildLUT(func(v float64) float64 { return (v-128)*factor + 128 })
	return wrap(color.ApplyLUT(pool, r.buf, &lut, &lut, &lut)), nil
}

// Saturation multiplies the HSV saturation of every pixel by 1 + value.
// value is in [-1, 3]; -1 removes all colour.
func Saturation(r *Raster, value float64) (*Raster, error) {
	return saturation(nil, r, value)
}

func saturation(pool *parallel.WorkerPool, r *Raster, value float64) (*Raster, error) {
	const op = "saturation"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "value", value, MinSaturation, MaxSaturation); err != nil {
		return nil, err
	}
	if value == 0 {
		return r.Clone(), nil
	}
	factor := 1 + value
	return wrap(mapRGB(pool, r.buf, func(red, green, blue uint8) (uint8, uint8, uint8) {
		h, s, v := color.ToHSV(red, green, blue)
		return color.FromHSV(h, clamp01(s*factor), v)
	})), nil
}

// WhiteBalance shifts the colour temperature. Positive values warm the
// image (more red, less blue), negative values cool it. value is in
// [-100, 100]; at the extremes the channels move by up to 50 levels.
func WhiteBalance(r *Raster, value float64) (*Raster, error) {
	return whiteBalance(nil, r, value)
}

func whiteBalance(pool *parallel.WorkerPool, r *Raster, value float64) (*Raster, error) {
	const op = "temperature"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "value", value, -MaxTemperature, MaxTemperature); err != nil {
		return nil, err
	}
	if value == 0 {
		return r.Clone(), nil
	}

	f := value / MaxTemperature
	var dr, dg, db float64
	if f > 0 {
		dr, dg, db = 50*f, 20*f, -40*f
	} else {
		f = -f
		dr, dg, db = -40*f, -10*f, 50*f
	}
	red := color.BuildLUT(func(v float64) float64 { return v + dr })
	green := color.BuildLUT(func(v float64) float64 { return v + dg })
	blue := color.BuildLUT(func(v float64) float64 { return v + db })
	return wrap(color.ApplyLUT(pool, r.buf, &red, &green, &blue)), nil
}

// Hue rotates the hue of every pixel by degrees in [-180, 180].
// Greys have no hue and are unchanged.
func Hue(r *Raster, degrees float64) (*Raster, error) {
	return hue(nil, r, degrees)
}

func hue(pool *parallel.WorkerPool, r *Raster, degrees float64) (*Raster, error) {
	const op = "hue"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "degrees", degrees, -MaxHueShift, MaxHueShift); err != nil {
		return nil, err
	}
	if degrees == 0 {
		return r.Clone(), nil
	}
	return wrap(mapRGB(pool, r.buf, func(red, green, blue uint8) (uint8, uint8, uint8) {
		if red == green && green == blue {
			return red, green, blue
		}
		h, s, v := color.ToHSV(red, green, blue)
		return color.FromHSV(h+degrees, s, v)
	})), nil
}

// Exposure scales linear light by 2^stops, with stops in [-3, 3].
// Channels are converted from sRGB to linear light and back.
func Exposure(r *Raster, stops float64) (*Raster, error) {
	return exposure(nil, r, stops)
}

func exposure(pool *parallel.WorkerPool, r *Raster, stops float64) (*Raster, error) {
	const op = "exposure"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "stops", stops, -MaxExposure, MaxExposure); err != nil {
		return nil, err
	}
	if stops == 0 {
		return r.Clone(), nil
	}
	lut := exposureLUT(stops)
	return wrap(color.ApplyLUT(pool, r.buf, lut, lut, lut)), nil
}

// Vibrance raises (or lowers) saturation where it is low, leaving already
// saturated colours and skin tones mostly alone. amount is in [-100, 100].
func Vibrance(r *Raster, amount float64) (*Raster, error) {
	return vibrance(nil, r, amount)
}

func vibrance(pool *parallel.WorkerPool, r *Raster, amount float64) (*Raster, error) {
	const op = "vibrance"
	if err := r.validate(op); err != nil {
		return nil, err
	}
	if err := checkRange(op, "amount", amount, -MaxVibrance, MaxVibrance); err != nil {
		return nil, err
	}
	if amount == 0 {
		return r.Clone(), nil
	}
	f := amount / MaxVibrance
	return wrap(mapRGB(pool, r.buf, func(red, green, blue uint8) (uint8, uint8, uint8) {
		hi := max(red, green, blue)
		lo := min(red, green, blue)
		if hi == 0 || float64(hi-lo)/255 <= 0.01 {
			return red, green, blue
		}
		h, s, v := color.ToHSV(red, green, blue)

		protect := 1 - math.Sqrt(s)
		if red > green && red > blue {
			protect *= 0.3 // skin tones
		}
		return color.FromHSV(h, clamp01(s+f*protect*(1-s)), v)
	})), nil
}

// mapRGB applies fn to the colour channels of every pixel, copying alpha.
func mapRGB(pool *parallel.WorkerPool, src imgbuf.Buf, fn func(r, g, b uint8) (uint8, uint8, uint8)) imgbuf.Buf {
	dst := src.Like()
	stride := src.Stride()
	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for i := y0 * stride; i < y1*stride; i += 4 {
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = fn(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			dst.Pix[i+3] = src.Pix[i+3]
		}
	})
	return dst
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
