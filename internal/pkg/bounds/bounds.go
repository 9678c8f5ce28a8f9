// Package bounds holds generic helpers for keeping synthetic values inside
// their configured plausible ranges.
package bounds

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an inclusive [Min, Max] interval.
type Range[T Number] struct {
	Min T
	Max T
}

// MustRange panics when min > max. Ranges are assembled from constants at
// startup, so a malformed range is a programming bug rather than a runtime
// condition.
func MustRange[T Number](min, max T) Range[T] {
	if min > max {
		panic(fmt.Sprintf("bounds: malformed range [%v, %v]", min, max))
	}
	return Range[T]{Min: min, Max: max}
}

func (r Range[T]) Clamp(v T) T {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

var (
	// Percentage is the [0, 100] interval every percentage metric must stay in.
	Percentage = MustRange[float64](0, 100)

	// Score is the 1-5 Likert interval used by satisfaction metrics.
	Score = MustRange[float64](1, 5)
)
