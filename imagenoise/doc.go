// Package imagenoise degrades images for robustness benchmarks with two
// operations: an isotropic Gaussian blur and a rectangular occlusion patch
// filled with the image's mean color.
//
// Images are handled as Buffers: a 2-D (grayscale) or 3-D (multi-channel)
// grid of float64 samples in row-major, channel-interleaved order. A Source is
// either a Path to an encoded image on disk or an in-memory *Buffer. Engines
// always work on a copy; the caller's buffer is never modified.
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Grayscale files decode to 2-D
// buffers, everything else to three RGB channels with alpha dropped.
package imagenoise
