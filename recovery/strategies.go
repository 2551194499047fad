package recovery

import (
	"fmt"
	"sync"
)

// StrictStrategy implements a fail-fast recovery strategy.
type StrictStrategy struct{}

func NewStrictStrategy() *StrictStrategy {
	return &StrictStrategy{}
}

func (s *StrictStrategy) OnError(err error, location Location) Action {
	return ActionFail
}

// LenientStrategy keeps going after a fault and records it. It is safe for
// concurrent use by engines shared between goroutines.
type LenientStrategy struct {
	// Limit caps the number of recorded faults; zero means unlimited.
	Limit int

	mu     sync.Mutex
	errors []error
}

func NewLenientStrategy() *LenientStrategy {
	return &LenientStrategy{}
}

func (s *LenientStrategy) OnError(err error, location Location) Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Limit == 0 || len(s.errors) < s.Limit {
		s.errors = append(s.errors, fmt.Errorf("[%s] %s at index %d: %w", location.Component, location.Operation, location.Index, err))
	}
	return ActionWarn
}

// Errors returns a snapshot of the recorded faults.
func (s *LenientStrategy) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]error, len(s.errors))
	copy(out, s.errors)
	return out
}
