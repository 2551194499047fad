package textnoise

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"

	"github.com/wudi/noisekit/alphabet"
	"github.com/wudi/noisekit/noiseerr"
	"github.com/wudi/noisekit/noiselevel"
	"github.com/wudi/noisekit/observability"
	"github.com/wudi/noisekit/recovery"
)

const (
	// Extra draws allowed when a substitution lands on the original character.
	maxSubstituteRetries = 5
	// Faults kept by the default lenient strategy.
	defaultFaultLimit = 128
)

// Rand is the randomness the engine needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Config configures an Engine. Zero values select the defaults.
type Config struct {
	// Alphabets resolves language identifiers. Defaults to alphabet.Default().
	Alphabets *alphabet.Registry
	Logger    observability.Logger
	// Rand drives index, operation and character selection. Defaults to the
	// math/rand/v2 top-level generator, which is safe for concurrent use.
	Rand Rand
	// Recovery decides how per-character faults are handled. Defaults to a
	// lenient strategy.
	Recovery recovery.Strategy
}

// Engine applies character noise. It holds no per-call state and may be
// shared between goroutines when its Rand allows it.
type Engine struct {
	alphabets *alphabet.Registry
	logger    observability.Logger
	rng       Rand
	recovery  recovery.Strategy
}

func New(cfg Config) *Engine {
	e := &Engine{
		alphabets: cfg.Alphabets,
		logger:    observability.OrNop(cfg.Logger),
		rng:       cfg.Rand,
		recovery:  cfg.Recovery,
	}
	if e.alphabets == nil {
		e.alphabets = alphabet.Default()
	}
	if e.rng == nil {
		e.rng = globalRand{}
	}
	if e.recovery == nil {
		e.recovery = &recovery.LenientStrategy{Limit: defaultFaultLimit}
	}
	return e
}

// Apply returns a noisy copy of text. tier and lang are matched
// case-insensitively. Text shorter than one modification at the given tier
// is returned unchanged.
func (e *Engine) Apply(text, tier, lang string) (string, error) {
	if !utf8.ValidString(text) {
		return "", noiseerr.TypeMismatch("text is not a valid UTF-8 character sequence")
	}
	t, err := noiselevel.Parse(tier)
	if err != nil {
		return "", err
	}
	a, err := e.alphabets.Lookup(lang)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return "", nil
	}
	k := modificationCount(t, len(runes))
	if k == 0 {
		return text, nil
	}
	e.checkScript(runes, a)

	plan := e.plan(len(runes), k)
	e.logger.Debug("text noise planned",
		observability.String("tier", t.String()),
		observability.String("language", a.Name()),
		observability.Int("length", len(runes)),
		observability.Int("modifications", k))
	return e.apply(runes, plan, a)
}

// Plan draws the plan Apply would use for a text of n characters.
func (e *Engine) Plan(n int, tier noiselevel.Tier) Plan {
	return e.plan(n, modificationCount(tier, n))
}

func modificationCount(t noiselevel.Tier, n int) int {
	if n <= 0 {
		return 0
	}
	return int(t.TextFraction() * float64(n))
}

func (e *Engine) plan(n, k int) Plan {
	if k <= 0 {
		return Plan{}
	}
	plan := make(Plan, k)
	// Partial Fisher-Yates: the first k slots end up a uniform sample
	// without replacement.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + e.rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	selected := idx[:k]
	sort.Ints(selected)
	for _, i := range selected {
		plan[i] = operations[e.rng.IntN(len(operations))]
	}
	return plan
}

func (e *Engine) apply(runes []rune, plan Plan, a alphabet.Alphabet) (string, error) {
	n := len(runes)
	out := make([]rune, 0, n+len(plan))
	for i := 0; i < n; {
		op, ok := plan[i]
		if !ok {
			out = append(out, runes[i])
			i++
			continue
		}
		next, step, err := e.applyOp(out, op, runes, i, a)
		if err != nil {
			loc := recovery.Location{Index: i, Operation: op.String(), Component: "textnoise"}
			switch e.recovery.OnError(err, loc) {
			case recovery.ActionFail:
				return "", fmt.Errorf("textnoise: %s at index %d: %w", op, i, err)
			case recovery.ActionWarn:
				e.logger.Warn("noise operation failed, keeping original character",
					observability.String("operation", op.String()),
					observability.Int("index", i),
					observability.Error("error", err))
			}
			out = append(out, runes[i])
			i++
			continue
		}
		out = next
		i += step
	}
	return string(out), nil
}

// applyOp appends the result of op at position i to out and reports how many
// original positions it consumed. On error out must be discarded.
func (e *Engine) applyOp(out []rune, op Operation, runes []rune, i int, a alphabet.Alphabet) (next []rune, step int, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, step, err = nil, 0, fmt.Errorf("panic: %v", r)
		}
	}()
	switch op {
	case Delete:
		return out, 1, nil
	case Substitute:
		return append(out, e.substitute(runes[i], a)), 1, nil
	case Insert:
		return append(out, e.draw(a), runes[i]), 1, nil
	case Swap:
		if i+1 < len(runes) {
			return append(out, runes[i+1], runes[i]), 2, nil
		}
		return append(out, runes[i]), 1, nil
	}
	return nil, 0, fmt.Errorf("unknown operation %d", int(op))
}

// substitute may return orig when every retry lands on it.
func (e *Engine) substitute(orig rune, a alphabet.Alphabet) rune {
	r := e.draw(a)
	for attempts := 0; r == orig && a.Len() > 1 && attempts < maxSubstituteRetries; attempts++ {
		r = e.draw(a)
	}
	return r
}

func (e *Engine) draw(a alphabet.Alphabet) rune {
	return a.At(e.rng.IntN(a.Len()))
}

func (e *Engine) checkScript(runes []rune, a alphabet.Alphabet) {
	s := alphabet.DominantScript(runes)
	if s == language.Unknown || a.UsesScript(s) {
		return
	}
	e.logger.Debug("text script is not written with the alphabet's language",
		observability.String("language", a.Name()),
		observability.String("text_script", s.String()),
		observability.String("alphabet_script", a.Script().String()))
}
