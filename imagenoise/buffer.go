package imagenoise

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/wudi/noisekit/noiseerr"
)

// Buffer is a rectangular grid of samples. Shape is [height, width] or
// [height, width, channels]; Pix holds height*width*channels samples.
type Buffer struct {
	Shape []int
	Pix   []float64
}

// NewBuffer returns a zero-filled buffer of the given shape.
func NewBuffer(shape ...int) *Buffer {
	n := 1
	for _, d := range shape {
		n *= max(d, 0)
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Buffer{Shape: s, Pix: make([]float64, n)}
}

// Dims returns the number of axes.
func (b *Buffer) Dims() int { return len(b.Shape) }

func (b *Buffer) Height() int { return b.Shape[0] }

func (b *Buffer) Width() int { return b.Shape[1] }

// Channels returns 1 for a 2-D buffer.
func (b *Buffer) Channels() int {
	if len(b.Shape) == 3 {
		return b.Shape[2]
	}
	return 1
}

func (b *Buffer) offset(y, x, c int) int {
	return (y*b.Width()+x)*b.Channels() + c
}

// At returns the sample at row y, column x, channel c.
func (b *Buffer) At(y, x, c int) float64 { return b.Pix[b.offset(y, x, c)] }

// Set stores a sample at row y, column x, channel c.
func (b *Buffer) Set(y, x, c int, v float64) { b.Pix[b.offset(y, x, c)] = v }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Shape: make([]int, len(b.Shape)), Pix: make([]float64, len(b.Pix))}
	copy(out.Shape, b.Shape)
	copy(out.Pix, b.Pix)
	return out
}

// FromImage converts img to a buffer with samples in 0..255. *image.Gray and
// *image.Gray16 become 2-D buffers; other models become [h, w, 3] RGB.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	switch src := img.(type) {
	case *image.Gray:
		buf := NewBuffer(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf.Pix[y*w+x] = float64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return buf
	case *image.Gray16:
		buf := NewBuffer(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf.Pix[y*w+x] = float64(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return buf
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	buf := NewBuffer(h, w, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := rgba.PixOffset(x, y)
			o := (y*w + x) * 3
			buf.Pix[o] = float64(rgba.Pix[i])
			buf.Pix[o+1] = float64(rgba.Pix[i+1])
			buf.Pix[o+2] = float64(rgba.Pix[i+2])
		}
	}
	return buf
}

// Image renders the buffer for an encoder, rounding and clamping samples to
// 0..255. Supported layouts are 2-D, and 3-D with 1, 3 or 4 channels.
func (b *Buffer) Image() (image.Image, error) {
	if err := validateBuffer(b); err != nil {
		return nil, err
	}
	h, w, c := b.Height(), b.Width(), b.Channels()
	switch c {
	case 1:
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: clamp8(b.At(y, x, 0))})
			}
		}
		return img, nil
	case 3, 4:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := color.NRGBA{R: clamp8(b.At(y, x, 0)), G: clamp8(b.At(y, x, 1)), B: clamp8(b.At(y, x, 2)), A: 255}
				if c == 4 {
					px.A = clamp8(b.At(y, x, 3))
				}
				img.SetNRGBA(x, y, px)
			}
		}
		return img, nil
	}
	return nil, noiseerr.InvalidArgument("cannot render %d channels as an image", c)
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
