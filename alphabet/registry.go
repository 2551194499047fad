package alphabet

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/wudi/noisekit/noiseerr"
)

const (
	asciiLetters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	asciiDigits      = "0123456789"
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var defaultRegistry = NewRegistry(
	New("english", "en", asciiLetters+asciiDigits+asciiPunctuation+" "),
	New("hindi", "hi", "अआइईउऊएऐओऔकखगघचछजझटठडढतथदधनपफबभमयरलवशषसह"+".,!?' "),
	New("igbo", "ig", asciiLetters+asciiDigits+" .,!?'"+"ịỊọỌụỤṅṄ"),
)

// Default returns the built-in registry (english, hindi, igbo).
func Default() *Registry { return defaultRegistry }

// Registry maps language identifiers to alphabets. It is never mutated after
// construction and is safe for concurrent use.
type Registry struct {
	byName map[string]Alphabet
}

// NewRegistry indexes alphabets by case-folded name. A later alphabet with
// the same name replaces an earlier one.
func NewRegistry(alphabets ...Alphabet) *Registry {
	r := &Registry{byName: make(map[string]Alphabet, len(alphabets))}
	for _, a := range alphabets {
		r.byName[foldName(a.name)] = a
	}
	return r
}

// With returns a new registry holding r's alphabets plus the given ones.
func (r *Registry) With(alphabets ...Alphabet) *Registry {
	merged := make([]Alphabet, 0, len(r.byName)+len(alphabets))
	for _, name := range r.Names() {
		merged = append(merged, r.byName[name])
	}
	return NewRegistry(append(merged, alphabets...)...)
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a language identifier case-insensitively. Unknown names and
// empty alphabets are rejected with noiseerr.ErrInvalidArgument.
func (r *Registry) Lookup(name string) (Alphabet, error) {
	a, ok := r.byName[foldName(name)]
	if !ok {
		return Alphabet{}, noiseerr.InvalidArgument("unsupported language %q (supported: %s)", name, strings.Join(r.Names(), ", "))
	}
	if a.Len() == 0 {
		return Alphabet{}, noiseerr.InvalidArgument("alphabet for language %q is empty", name)
	}
	return a, nil
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
