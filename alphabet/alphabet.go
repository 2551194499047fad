// Package alphabet defines the per-language character sets that the text
// engine draws from when substituting or inserting characters.
//
// The built-in sets are deliberately simplified: Hindi carries only the basic
// Devanagari vowels and consonants (no matras, conjuncts or virama) and Igbo
// carries single code points only, no digraphs. Noise is applied per code
// point regardless of language.
package alphabet

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/norm"
)

// Alphabet is an immutable, ordered set of code points usable as a
// substitution and insertion source for one language.
type Alphabet struct {
	name    string
	tag     language.Language
	script  language.Script
	symbols []rune
}

// New builds an alphabet from its symbols. The source is NFC-normalized so
// that precomposed letters count as a single symbol. tag is a BCP 47 language
// tag such as "hi" or "ig".
func New(name, tag, symbols string) Alphabet {
	runes := []rune(norm.NFC.String(symbols))
	return Alphabet{
		name:    name,
		tag:     language.NewLanguage(tag),
		script:  DominantScript(runes),
		symbols: runes,
	}
}

// Name returns the identifier the alphabet was registered under.
func (a Alphabet) Name() string { return a.name }

// Tag returns the canonical BCP 47 language tag.
func (a Alphabet) Tag() language.Language { return a.tag }

// Script returns the dominant writing system of the symbols.
func (a Alphabet) Script() language.Script { return a.script }

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// At returns the i-th symbol.
func (a Alphabet) At(i int) rune { return a.symbols[i] }

// Symbols returns a copy of the symbol sequence.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Contains reports whether r is one of the symbols.
func (a Alphabet) Contains(r rune) bool {
	for _, s := range a.symbols {
		if s == r {
			return true
		}
	}
	return false
}

// UsesScript reports whether text in script s is expected for the alphabet's
// language. Unknown languages accept every script.
func (a Alphabet) UsesScript(s language.Script) bool {
	if s == a.script {
		return true
	}
	id, ok := language.NewLangID(a.tag)
	if !ok {
		return true
	}
	return id.UseScript(s)
}

// DominantScript returns the most frequent strong script among runes, or
// language.Unknown when there is none (digits and punctuation only).
func DominantScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	best, bestCount := language.Unknown, 0
	for _, r := range runes {
		s := language.LookupScript(r)
		if s == language.Unknown || !s.Strong() {
			continue
		}
		counts[s]++
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best
}
