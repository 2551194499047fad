package imagenoise

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wudi/noisekit/noiseerr"
	"github.com/wudi/noisekit/observability"
)

type fixedRand struct {
	vals []int
}

func (f *fixedRand) IntN(n int) int {
	if len(f.vals) == 0 {
		return 0
	}
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

type fieldLogger struct {
	observability.NopLogger
	msgs   []string
	fields map[string]interface{}
}

func (l *fieldLogger) Debug(msg string, fields ...observability.Field) {
	l.msgs = append(l.msgs, msg)
	if l.fields == nil {
		l.fields = make(map[string]interface{})
	}
	for _, f := range fields {
		l.fields[f.Key()] = f.Value()
	}
}

func TestBlurPreservesShapeAndInput(t *testing.T) {
	src := gradient(12, 9, 3)
	before := src.Clone()
	for _, tier := range []string{"low", "Medium", "HIGH"} {
		out, err := ApplyBlur(src, tier)
		require.NoError(t, err)
		require.Equal(t, src.Shape, out.Shape)
		require.Len(t, out.Pix, len(src.Pix))
	}
	require.Equal(t, before, src)
}

func TestOcclusionPreservesShapeAndInput(t *testing.T) {
	src := gradient(12, 9, 3)
	before := src.Clone()
	out, err := ApplyOcclusion(src, "high")
	require.NoError(t, err)
	require.Equal(t, src.Shape, out.Shape)
	require.Equal(t, before, src)
}

func TestOcclusionPlacementUsesRand(t *testing.T) {
	logger := &fieldLogger{}
	e := New(Config{Rand: &fixedRand{vals: []int{37, 5}}, Logger: logger})
	out, err := e.Occlude(NewBuffer(100, 100, 3), "high")
	require.NoError(t, err)
	require.Equal(t, []int{100, 100, 3}, out.Shape)
	require.Equal(t, []string{"occlusion applied"}, logger.msgs)
	require.Equal(t, 5, logger.fields["x"])
	require.Equal(t, 37, logger.fields["y"])
	require.Equal(t, 63, logger.fields["width"])
	require.Equal(t, 63, logger.fields["height"])
}

func TestBlurLogsSigma(t *testing.T) {
	logger := &fieldLogger{}
	_, err := New(Config{Logger: logger}).Blur(NewBuffer(4, 4), "medium")
	require.NoError(t, err)
	require.Equal(t, 3.0, logger.fields["sigma"])
	require.Equal(t, 19, logger.fields["kernel"])
}

func TestEngineErrors(t *testing.T) {
	e := New(Config{})
	ops := map[string]func(Source, string) (*Buffer, error){
		"blur":      e.Blur,
		"occlusion": e.Occlude,
	}
	for name, op := range ops {
		_, err := op(NewBuffer(4, 4), "extreme")
		require.ErrorIs(t, err, noiseerr.ErrInvalidArgument, name)

		_, err = op(nil, "low")
		require.ErrorIs(t, err, noiseerr.ErrTypeMismatch, name)

		_, err = op(NewBuffer(4), "low")
		require.ErrorIs(t, err, noiseerr.ErrInvalidArgument, name)

		_, err = op(NewBuffer(0, 4, 3), "low")
		require.ErrorIs(t, err, noiseerr.ErrInvalidArgument, name)

		_, err = op(Path(filepath.Join(t.TempDir(), "nope.jpg")), "low")
		require.ErrorIs(t, err, noiseerr.ErrNotFound, name)
	}
}

func TestEngineFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, sampleNRGBA()))
	require.NoError(t, f.Close())

	out, err := ApplyBlur(Path(path), "low")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3}, out.Shape)

	out, err = ApplyOcclusion(Path(path), "medium")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3}, out.Shape)
	_, err = out.Image()
	require.NoError(t, err)
}
