package textnoise

import (
	"fmt"
	"sort"
)

// Operation is a single-character edit.
type Operation int

const (
	Substitute Operation = iota
	Delete
	Insert
	Swap
)

var operations = [...]Operation{Substitute, Delete, Insert, Swap}

func (o Operation) String() string {
	switch o {
	case Substitute:
		return "substitute"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Swap:
		return "swap"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Plan maps positions in the original text to the operation planned there.
type Plan map[int]Operation

// Indices returns the planned positions in ascending order.
func (p Plan) Indices() []int {
	out := make([]int, 0, len(p))
	for i := range p {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
