// Package sleep provides statistics over the minutes guards were observed asleep.
package sleep

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned when a mode is requested for zero values.
var ErrEmpty = errors.New("cannot compute the mode of zero values")

// ModeResult is the most frequent value of a collection and how often it occurred.
type ModeResult[T any] struct {
	Value      T
	Occurrence int
}

// Mode returns the most frequent element of values.
// When several elements share the highest count the smallest one wins.
func Mode[T constraints.Ordered](values []T) (ModeResult[T], error) {
	if len(values) == 0 {
		return ModeResult[T]{}, ErrEmpty
	}

	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ModeResult[T]{Value: values[0], Occurrence: counts[values[0]]}
	for v, n := range counts {
		if n > best.Occurrence || (n == best.Occurrence && v < best.Value) {
			best = ModeResult[T]{Value: v, Occurrence: n}
		}
	}
	return best, nil
}
