// Package seed derives reproducible random generators from sample keys so a
// benchmark corpus can be regenerated with identical noise.
package seed

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// New returns a ChaCha8-backed generator whose seed is the BLAKE2b-256 digest
// of the length-prefixed parts, typically a sample id, tier and language.
// The returned generator is not safe for concurrent use.
func New(parts ...string) *rand.Rand {
	return rand.New(rand.NewChaCha8(Key(parts...)))
}

// Key returns the 32-byte seed New would use for parts.
func Key(parts ...string) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with an oversized MAC key.
		panic(err)
	}
	var n [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write([]byte(p))
	}
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}
