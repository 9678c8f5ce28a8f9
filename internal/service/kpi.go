package service

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ie-dashboard/backend/internal/model"
)

// latest and prior pull the newest and second-newest values of a yearly
// series; series shorter than two entries yield a zero delta.
func latest[T int | float64](vs []T) T {
	if len(vs) == 0 {
		var zero T
		return zero
	}
	return vs[len(vs)-1]
}

func yearDelta[T int | float64](vs []T) T {
	if len(vs) < 2 {
		var zero T
		return zero
	}
	return vs[len(vs)-1] - vs[len(vs)-2]
}

func direction[T int | float64](delta T) string {
	switch {
	case delta > 0:
		return model.DeltaPositive
	case delta < 0:
		return model.DeltaNegative
	default:
		return model.DeltaNeutral
	}
}

func signed(f string, v float64) string {
	s := fmt.Sprintf(f, v)
	if v >= 0 {
		return "+" + s
	}
	return s
}

func growthPct[T int | float64](vs []T) float64 {
	if len(vs) < 2 || float64(vs[0]) == 0 {
		return 0
	}
	first := float64(vs[0])
	last := float64(vs[len(vs)-1])
	return (last - first) / first * 100
}

func toFloats[T int | float64](vs []T) []float64 {
	return lo.Map(vs, func(v T, _ int) float64 {
		return float64(v)
	})
}
