// Package noiseerr holds the error taxonomy shared by the noise engines.
//
// Engines wrap one of the sentinels below with call-specific context, so
// callers should match with errors.Is rather than comparing strings.
package noiseerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an unknown tier or language, an empty
	// alphabet, or an image buffer with an unsupported shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch reports an input that is not a character sequence or
	// an image reference.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotFound reports an image path that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrIOFailure reports a resource that exists but cannot be decoded.
	ErrIOFailure = errors.New("io failure")
)

// InvalidArgument wraps ErrInvalidArgument with a formatted message.
func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// TypeMismatch wraps ErrTypeMismatch with a formatted message.
func TypeMismatch(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrTypeMismatch)
}
