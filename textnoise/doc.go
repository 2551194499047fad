// Package textnoise applies character-level noise to text for robustness
// benchmarks.
//
// A call selects floor(fraction × length) distinct code-point positions of
// the original text, assigns each one of four operations (substitute,
// delete, insert, swap with the next character) and rebuilds the text left to
// right. Replacement and inserted characters come from the alphabet
// registered for the requested language.
//
// A swap consumes its right-hand neighbour: whatever was planned for that
// neighbour is dropped. A swap planned on the last character has nothing to
// exchange with and leaves it unchanged.
//
// A failure while applying a single operation does not abort the call by
// default. The engine's recovery.Strategy is consulted; the lenient default
// logs the fault, keeps the original character and moves on.
package textnoise
