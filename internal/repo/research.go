package repo

import (
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/bounds"
)

var (
	anchorTotalFundingM  = []float64{148.2, 155.6, 162.1, 171.8, 185.3, 192.7}
	anchorFacultyPubs    = []int{1842, 1923, 2015, 2187, 2341, 2456}
	anchorHIndexMedian   = []int{18, 19, 19, 20, 21, 22}
	anchorClinicalTrials = []int{245, 262, 278, 301, 324, 338}
)

var (
	fundingRange = bounds.MustRange[float64](50, 400)
	pubsRange    = bounds.MustRange(1000, 4000)
	hIndexRange  = bounds.MustRange(10, 35)
	trialsRange  = bounds.MustRange(100, 600)
)

// nihShareRange keeps the NIH portion of total funding around the ~67%
// concentration the narrative calls out.
var nihShareRange = bounds.MustRange(0.63, 0.69)

type Research struct{}

func NewResearch() *Research {
	return &Research{}
}

func (r *Research) Generate(seed uint64) *model.ResearchDataset {
	rng := source(seed, saltResearch)

	total := jitter(rng, anchorTotalFundingM, 4.0, fundingRange, 1)

	// NIH funding is derived from total so the invariant NIH <= total holds
	// for every draw.
	nih := make([]float64, len(total))
	for i, t := range total {
		share := nihShareRange.Min + rng.Float64()*(nihShareRange.Max-nihShareRange.Min)
		nih[i] = round(t*share, 1)
	}

	return &model.ResearchDataset{
		Years:          constant.AcademicYears,
		TotalFundingM:  total,
		NIHFundingM:    nih,
		FacultyPubs:    jitterInts(rng, anchorFacultyPubs, 60, pubsRange),
		HIndexMedian:   jitterInts(rng, anchorHIndexMedian, 1, hIndexRange),
		ClinicalTrials: jitterInts(rng, anchorClinicalTrials, 10, trialsRange),
	}
}
