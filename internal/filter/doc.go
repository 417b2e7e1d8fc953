// Package filter implements the neighbourhood and colour-matrix filters
// applied to RGBA8 buffers:
//   - Gaussian blur (separable, O(w*h*r))
//   - Unsharp-mask sharpening
//   - 3x3 convolution (emboss and friends)
//   - Edge-preserving bilateral denoise
//   - Radial vignette
//   - 4x5 colour matrices (grayscale, sepia)
//
// Every filter reads its input and writes a freshly allocated output, and
// pixels outside the image are taken from the nearest edge pixel
// (clamp-to-edge). Filters split their rows across a parallel.WorkerPool
// when one is supplied.
package filter
