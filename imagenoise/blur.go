package imagenoise

import "math"

// kernelSize derives the odd kernel width from sigma: round(6*sigma + 1),
// forced odd. Sigma 1, 3 and 6 give 7, 19 and 37.
func kernelSize(sigma float64) int {
	return int(math.Round(sigma*6+1)) | 1
}

// gaussianKernel returns a normalized 1-D kernel of kernelSize(sigma) taps.
func gaussianKernel(sigma float64) []float64 {
	size := kernelSize(sigma)
	radius := size / 2
	k := make([]float64, size)
	var sum float64
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// reflect101 maps p into [0, n) mirroring around the edge samples
// (dcb|abcd|cba), repeatedly when the kernel is wider than the image.
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		}
		if p >= n {
			p = 2*(n-1) - p
		}
	}
	return p
}

// gaussianBlur smooths every channel of src separably and returns a new
// buffer of the same shape.
func gaussianBlur(src *Buffer, sigma float64) *Buffer {
	k := gaussianKernel(sigma)
	r := len(k) / 2
	h, w, c := src.Height(), src.Width(), src.Channels()

	tmp := make([]float64, len(src.Pix))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				var acc float64
				for i, kv := range k {
					xx := reflect101(x+i-r, w)
					acc += kv * src.Pix[(row+xx)*c+ch]
				}
				tmp[(row+x)*c+ch] = acc
			}
		}
	}

	out := NewBuffer(src.Shape...)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				var acc float64
				for i, kv := range k {
					yy := reflect101(y+i-r, h)
					acc += kv * tmp[(yy*w+x)*c+ch]
				}
				out.Pix[(y*w+x)*c+ch] = acc
			}
		}
	}
	return out
}
