// Command retouch applies photo adjustments from the command line.
//
// Usage:
//
//	retouch apply --brightness 20 --contrast 0.2 photo.jpg
//	retouch apply --preset "Warm film" --jobs 4 --output-dir out/ *.png
//	retouch rotate 90 in.png out.png
//	retouch resize --filter lanczos3 800 600 in.jpg out.webp
//	retouch effect sepia in.png out.png
//	retouch histogram photo.jpg
//	retouch preset save "Warm film" --temperature 40 --contrast 0.15
//
// Settings are read from a TOML file (--config); flags override it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
