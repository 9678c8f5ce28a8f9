package repo

import (
	"fmt"

	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/bounds"
)

const (
	lcmeTotalStandards = 95
	gridStandards      = 12
	gridElements       = 8

	// Status draw probabilities for a grid cell.
	pNeedsAttention = 0.03
	pInProgress     = 0.08 // cumulative with pNeedsAttention
)

var (
	actionItemsRange = bounds.MustRange(0, 12)
	cqiRange         = bounds.MustRange(2, 20)
)

type Compliance struct{}

func NewCompliance() *Compliance {
	return &Compliance{}
}

func (r *Compliance) Generate(seed uint64) *model.ComplianceDataset {
	rng := source(seed, saltCompliance)

	grid := make([]model.StandardCell, 0, gridStandards*gridElements)
	for i := 1; i <= gridStandards; i++ {
		for j := 1; j <= gridElements; j++ {
			v := rng.Float64()
			status := model.StandardMet
			if v < pNeedsAttention {
				status = model.StandardNeedsAttention
			} else if v < pInProgress {
				status = model.StandardInProgress
			}
			grid = append(grid, model.StandardCell{
				Standard: i,
				Element:  j,
				ID:       fmt.Sprintf("%d.%d", i, j),
				Status:   status,
			})
		}
	}

	standardsMet := lcmeTotalStandards - 2 - rng.Intn(3)

	return &model.ComplianceDataset{
		StandardsMet:        standardsMet,
		TotalStandards:      lcmeTotalStandards,
		AccreditationStatus: "Full",
		NextVisitYear:       2028,
		OpenActionItems:     actionItemsRange.Clamp(3 + rng.Intn(4)),

		ISACompletion:         round(bounds.Percentage.Clamp(95.5+rng.Float64()*3.5), 1),
		CQIProjectsActive:     cqiRange.Clamp(10 + rng.Intn(5)),
		CQIProjectsComplete:   cqiRange.Clamp(6 + rng.Intn(5)),
		ComplianceTrainingPct: round(bounds.Percentage.Clamp(92.0+rng.Float64()*6.0), 1),

		StandardsGrid: grid,
	}
}
