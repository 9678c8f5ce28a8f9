package repo

import (
	"math/rand"

	"github.com/ie-dashboard/backend/internal/pkg/bounds"
)

// Domain salts keep the per-domain streams independent: regenerating one
// domain never shifts the values of another for the same seed.
const (
	saltEducation  = 0x45445543 // "EDUC"
	saltResearch   = 0x52455345 // "RESE"
	saltWorkforce  = 0x574f524b // "WORK"
	saltCompliance = 0x434f4d50 // "COMP"
)

func source(seed uint64, salt uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed ^ salt)))
}

// jitter perturbs each anchor value by a uniform offset in [-spread, spread]
// and clamps the result into r. The anchors are the demonstration
// trajectories of the original dashboard; the jitter keeps every session
// looking fresh without leaving plausible territory.
func jitter(rng *rand.Rand, anchors []float64, spread float64, r bounds.Range[float64], digits int) []float64 {
	out := make([]float64, len(anchors))
	for i, a := range anchors {
		v := a + (rng.Float64()*2-1)*spread
		out[i] = round(r.Clamp(v), digits)
	}
	return out
}

func jitterInts(rng *rand.Rand, anchors []int, spread int, r bounds.Range[int]) []int {
	out := make([]int, len(anchors))
	for i, a := range anchors {
		v := a + rng.Intn(2*spread+1) - spread
		out[i] = r.Clamp(v)
	}
	return out
}

func round(v float64, digits int) float64 {
	pow := 1.0
	for i := 0; i < digits; i++ {
		pow *= 10
	}
	return float64(int64(v*pow+0.5)) / pow
}
