package retouch

import (
	"errors"
	"fmt"
)

// Errors reported by operators, the codec boundary and the engine.
// Every error returned by this package matches one of them with errors.Is.
var (
	// ErrInvalidRegion is returned when a crop rectangle leaves the raster.
	ErrInvalidRegion = errors.New("retouch: invalid region")

	// ErrInvalidDimensions is returned for zero or negative sizes, a pixel
	// slice whose length is not width*height*4, or a nil raster.
	ErrInvalidDimensions = errors.New("retouch: invalid dimensions")

	// ErrInvalidParameter is returned when a parameter is outside its
	// declared range, such as levels with black >= white.
	ErrInvalidParameter = errors.New("retouch: invalid parameter")

	// ErrDecode is returned when input bytes cannot be decoded.
	ErrDecode = errors.New("retouch: decode failure")

	// ErrEncode is returned when a raster cannot be encoded.
	ErrEncode = errors.New("retouch: encode failure")

	// ErrCancelled is returned by a task that was cancelled or superseded.
	ErrCancelled = errors.New("retouch: cancelled")

	// ErrWorkerUnavailable is returned when the engine cannot accept or
	// start work.
	ErrWorkerUnavailable = errors.New("retouch: worker unavailable")
)

// OpError records the operator or pipeline stage that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "retouch: " + e.Op + ": " + trimPrefix(e.Err.Error())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// trimPrefix avoids "retouch: op: retouch: ..." when wrapping our own errors.
func trimPrefix(s string) string {
	const p = "retouch: "
	if len(s) >= len(p) && s[:len(p)] == p {
		return s[len(p):]
	}
	return s
}

// rangeError reports a parameter outside [lo, hi].
func rangeError(op, name string, v, lo, hi float64) error {
	return &OpError{
		Op:  op,
		Err: fmt.Errorf("%w: %s = %g outside [%g, %g]", ErrInvalidParameter, name, v, lo, hi),
	}
}

// checkRange returns a rangeError unless lo <= v <= hi. NaN is rejected.
func checkRange(op, name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return rangeError(op, name, v, lo, hi)
	}
	return nil
}
