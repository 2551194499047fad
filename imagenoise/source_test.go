package imagenoise

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/wudi/noisekit/noiseerr"
)

func sampleNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 100), B: 40, A: 255})
		}
	}
	return img
}

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writeImage(t, "sample.png", func(f *os.File) error { return png.Encode(f, sampleNRGBA()) })
	b, err := load(Path(path))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3}, b.Shape)
	require.Equal(t, 180.0, b.At(2, 3, 0))
	require.Equal(t, 200.0, b.At(2, 3, 1))
	require.Equal(t, 40.0, b.At(2, 3, 2))
}

func TestLoadGrayPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 2))
	img.SetGray(4, 1, color.Gray{Y: 99})
	path := writeImage(t, "gray.png", func(f *os.File) error { return png.Encode(f, img) })
	b, err := load(Path(path))
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, b.Shape)
	require.Equal(t, 99.0, b.At(1, 4, 0))
}

func TestLoadBMP(t *testing.T) {
	path := writeImage(t, "sample.bmp", func(f *os.File) error { return bmp.Encode(f, sampleNRGBA()) })
	b, err := load(Path(path))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3}, b.Shape)
	require.Equal(t, 120.0, b.At(0, 2, 0))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(Path(filepath.Join(t.TempDir(), "missing.png")))
	require.ErrorIs(t, err, noiseerr.ErrNotFound)
}

func TestLoadUndecodableFile(t *testing.T) {
	path := writeImage(t, "notes.png", func(f *os.File) error {
		_, err := f.WriteString("definitely not an image")
		return err
	})
	_, err := load(Path(path))
	require.ErrorIs(t, err, noiseerr.ErrIOFailure)

	_, err = load(Path(t.TempDir()))
	require.ErrorIs(t, err, noiseerr.ErrIOFailure)
}

func TestLoadBufferCopies(t *testing.T) {
	src := NewBuffer(2, 2)
	b, err := load(src)
	require.NoError(t, err)
	b.Pix[0] = 5
	require.Zero(t, src.Pix[0])
}

func TestLoadNilSources(t *testing.T) {
	_, err := load(nil)
	require.ErrorIs(t, err, noiseerr.ErrTypeMismatch)

	var b *Buffer
	_, err = load(b)
	require.ErrorIs(t, err, noiseerr.ErrTypeMismatch)
}
