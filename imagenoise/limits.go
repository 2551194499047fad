package imagenoise

import (
	"github.com/wudi/noisekit/noiseerr"
)

const (
	// maxBufferDimension caps width/height so a lying file header cannot
	// trigger a huge allocation.
	maxBufferDimension = 32768
	// maxBufferPixels bounds the pixel count (roughly 64MP).
	maxBufferPixels int64 = 64 * 1024 * 1024
	// maxBufferChannels matches the usual channel ceiling of image libraries.
	maxBufferChannels = 512
)

func validateBufferBounds(width, height int) error {
	if width <= 0 || height <= 0 {
		return noiseerr.InvalidArgument("image is empty (%d x %d)", width, height)
	}
	if width > maxBufferDimension || height > maxBufferDimension {
		return noiseerr.InvalidArgument("image dimension exceeds limit (%d x %d)", width, height)
	}
	pixels := int64(width) * int64(height)
	if pixels > maxBufferPixels {
		return noiseerr.InvalidArgument("image pixel count %d exceeds limit %d", pixels, maxBufferPixels)
	}
	return nil
}

func validateBuffer(b *Buffer) error {
	if b == nil {
		return noiseerr.TypeMismatch("image buffer is nil")
	}
	if d := b.Dims(); d != 2 && d != 3 {
		return noiseerr.InvalidArgument("unsupported buffer dimensionality %d (expected 2 or 3)", d)
	}
	if err := validateBufferBounds(b.Width(), b.Height()); err != nil {
		return err
	}
	c := b.Channels()
	if c <= 0 || c > maxBufferChannels {
		return noiseerr.InvalidArgument("unsupported channel count %d", c)
	}
	if want := b.Height() * b.Width() * c; len(b.Pix) != want {
		return noiseerr.InvalidArgument("buffer holds %d samples, shape %v needs %d", len(b.Pix), b.Shape, want)
	}
	return nil
}
