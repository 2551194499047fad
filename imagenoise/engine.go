package imagenoise

import (
	"math/rand/v2"

	"github.com/wudi/noisekit/noiselevel"
	"github.com/wudi/noisekit/observability"
)

// Rand is the randomness used to place occlusion patches. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Config configures an Engine. Zero values select the defaults.
type Config struct {
	Logger observability.Logger
	// Rand places occlusion patches. Defaults to the concurrency-safe
	// math/rand/v2 top-level generator.
	Rand Rand
}

type Engine struct {
	logger observability.Logger
	rng    Rand
}

func New(cfg Config) *Engine {
	e := &Engine{logger: observability.OrNop(cfg.Logger), rng: cfg.Rand}
	if e.rng == nil {
		e.rng = globalRand{}
	}
	return e
}

// Blur returns a Gaussian-blurred copy of src. The tier selects sigma
// (low 1.0, medium 3.0, high 6.0).
func (e *Engine) Blur(src Source, tier string) (*Buffer, error) {
	t, err := noiselevel.Parse(tier)
	if err != nil {
		return nil, err
	}
	buf, err := load(src)
	if err != nil {
		return nil, err
	}
	sigma := t.BlurSigma()
	out := gaussianBlur(buf, sigma)
	e.logger.Debug("gaussian blur applied",
		observability.String("tier", t.String()),
		observability.Float64("sigma", sigma),
		observability.Int("kernel", kernelSize(sigma)))
	return out, nil
}

// Occlude returns a copy of src with a rectangle covering about the tier's
// area ratio (low 8%, medium 20%, high 40%) filled with the mean color.
func (e *Engine) Occlude(src Source, tier string) (*Buffer, error) {
	t, err := noiselevel.Parse(tier)
	if err != nil {
		return nil, err
	}
	buf, err := load(src)
	if err != nil {
		return nil, err
	}
	rect := e.occlude(buf, t.OcclusionRatio())
	e.logger.Debug("occlusion applied",
		observability.String("tier", t.String()),
		observability.Int("x", rect.Min.X),
		observability.Int("y", rect.Min.Y),
		observability.Int("width", rect.Dx()),
		observability.Int("height", rect.Dy()))
	return buf, nil
}

var defaultEngine = New(Config{})

// ApplyBlur blurs src with the default engine.
func ApplyBlur(src Source, tier string) (*Buffer, error) {
	return defaultEngine.Blur(src, tier)
}

// ApplyOcclusion occludes src with the default engine.
func ApplyOcclusion(src Source, tier string) (*Buffer, error) {
	return defaultEngine.Occlude(src, tier)
}
