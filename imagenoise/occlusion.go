package imagenoise

import (
	"image"
	"math"
)

// patchSize scales both axes by sqrt(ratio) so the patch keeps the image's
// aspect ratio and covers roughly ratio of its area. Each side is at least 1.
func patchSize(h, w int, ratio float64) (ph, pw int) {
	s := math.Sqrt(ratio)
	ph = min(max(1, int(s*float64(h))), h)
	pw = min(max(1, int(s*float64(w))), w)
	return ph, pw
}

// channelMeans returns the mean sample of every channel.
func channelMeans(b *Buffer) []float64 {
	c := b.Channels()
	sums := make([]float64, c)
	for i, v := range b.Pix {
		sums[i%c] += v
	}
	n := float64(b.Height() * b.Width())
	for i := range sums {
		sums[i] /= n
	}
	return sums
}

// occlude fills a randomly placed patch of buf in place with the per-channel
// mean taken before drawing, and returns the patch in (x, y) coordinates.
func (e *Engine) occlude(buf *Buffer, ratio float64) image.Rectangle {
	h, w, c := buf.Height(), buf.Width(), buf.Channels()
	ph, pw := patchSize(h, w, ratio)
	y0 := e.rng.IntN(h - ph + 1)
	x0 := e.rng.IntN(w - pw + 1)

	mean := channelMeans(buf)
	for y := y0; y < y0+ph; y++ {
		for x := x0; x < x0+pw; x++ {
			copy(buf.Pix[(y*w+x)*c:(y*w+x+1)*c], mean)
		}
	}
	return image.Rect(x0, y0, x0+pw, y0+ph)
}
