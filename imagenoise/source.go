package imagenoise

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/wudi/noisekit/noiseerr"
)

// Source references an input image: a Path or a *Buffer.
type Source interface {
	buffer() (*Buffer, error)
}

// Path is an image file on disk.
type Path string

func (p Path) buffer() (*Buffer, error) { return loadFile(string(p)) }

func (b *Buffer) buffer() (*Buffer, error) {
	if err := validateBuffer(b); err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

// load resolves src to a validated buffer the caller may modify freely.
func load(src Source) (*Buffer, error) {
	if src == nil {
		return nil, noiseerr.TypeMismatch("image source is nil")
	}
	buf, err := src.buffer()
	if err != nil {
		return nil, err
	}
	if err := validateBuffer(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func loadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image file %q: %w", path, noiseerr.ErrNotFound)
		}
		return nil, fmt.Errorf("open image %q: %v: %w", path, err, noiseerr.ErrIOFailure)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("read image header %q: %v: %w", path, err, noiseerr.ErrIOFailure)
	}
	if err := validateBufferBounds(cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind image %q: %v: %w", path, err, noiseerr.ErrIOFailure)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %v: %w", path, err, noiseerr.ErrIOFailure)
	}
	return FromImage(img), nil
}
