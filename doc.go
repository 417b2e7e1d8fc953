// Package retouch is a CPU image-retouching engine.
//
// # Overview
//
// retouch applies photo adjustments to 8-bit RGBA rasters: colour and tone
// (brightness, contrast, saturation, white balance, hue, exposure,
// vibrance, highlights, shadows, curves, levels), geometry (rotate, flip,
// crop, resize), spatial filters (Gaussian blur, sharpen, emboss,
// vignette, noise reduction) and histogram operations.
//
// Every operator is a pure function: it validates its parameters, leaves
// its input untouched and returns a new [Raster]. Neutral parameters
// return an identical copy.
//
// # Quick Start
//
//	import "github.com/gogpu/retouch"
//
//	src, err := retouch.Decode(data)
//	if err != nil {
//	    return err
//	}
//	out, err := retouch.Apply(ctx, src, retouch.Params{
//	    Brightness: 20,
//	    Contrast:   0.2,
//	    Vignette:   retouch.VignetteParams{Strength: 40, Radius: 50},
//	}, nil)
//	if err != nil {
//	    return err
//	}
//	png, err := retouch.Encode(out, retouch.PNG, 0)
//
// # Pipeline
//
// [Apply] runs the stages enabled by a [Params] in a fixed order
// (see [Stages]) and reports progress after each one. [Engine] runs the
// same pipeline on background goroutines, one [Task] per submission, with
// last-submission-wins cancellation per slot:
//
//	e, err := retouch.NewEngine()
//	if err != nil {
//	    return err
//	}
//	defer e.Close()
//
//	task, err := e.Process("preview", src, params)
//	for ev := range task.Events() {
//	    switch ev.Kind {
//	    case retouch.EventProgress:
//	        fmt.Printf("%3.0f%% %s\n", ev.Progress*100, ev.Label)
//	    case retouch.EventCompleted:
//	        show(ev.Raster)
//	    }
//	}
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X right, Y down
//   - Pixel (x, y) covers [x, x+1) x [y, y+1); its centre is (x+0.5, y+0.5)
//   - Positive rotation angles turn the image clockwise
//
// # Errors
//
// Every error matches one of the Err* sentinels with errors.Is, and most
// are wrapped in an [*OpError] naming the operator that failed.
package retouch

// Version information
const (
	// Version is the current version of the library
	Version = "0.4.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 4

	// VersionPatch is the patch version
	VersionPatch = 0
)
