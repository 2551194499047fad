// Package recovery decides what happens when a single text operation fails
// part-way through a call: abort the whole call, or keep the original
// character and continue.
package recovery

import "fmt"

type Strategy interface {
	OnError(err error, location Location) Action
}

// Location identifies the character being processed when a fault occurred.
type Location struct {
	Index     int
	Operation string
	Component string
}

type Action int

const (
	ActionFail Action = iota
	ActionSkip
	ActionWarn
)

func (a Action) String() string {
	switch a {
	case ActionFail:
		return "fail"
	case ActionSkip:
		return "skip"
	case ActionWarn:
		return "warn"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
