package repo

import (
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/bounds"
)

var (
	anchorTotalFaculty      = []int{685, 698, 712, 725, 741, 758}
	anchorPctFemaleFaculty  = []float64{38.2, 39.1, 40.5, 41.8, 43.2, 44.1}
	anchorPctURMFaculty     = []float64{12.5, 13.1, 13.8, 14.5, 15.2, 15.8}
	anchorVoluntaryTurnover = []float64{8.2, 7.8, 9.1, 7.5, 6.9, 7.1}
	anchorTimeToPromotion   = []float64{6.8, 6.5, 6.7, 6.3, 6.1, 5.9}
)

var (
	facultyRange   = bounds.MustRange(500, 1000)
	promotionRange = bounds.MustRange[float64](3, 10)

	// Department satisfaction draws uniformly from [3.2, 4.4] on the 1-5
	// scale, same spread as the original demonstration.
	deptScoreBase   = 3.2
	deptScoreSpread = 1.2
)

type Workforce struct{}

func NewWorkforce() *Workforce {
	return &Workforce{}
}

func (r *Workforce) Generate(seed uint64) *model.WorkforceDataset {
	rng := source(seed, saltWorkforce)

	deptSatisfaction := make([]model.DeptScore, 0, len(constant.Departments))
	for _, dept := range constant.Departments {
		score := round(bounds.Score.Clamp(deptScoreBase+rng.Float64()*deptScoreSpread), 2)
		deptSatisfaction = append(deptSatisfaction, model.DeptScore{
			Department: dept,
			Score:      score,
		})
	}

	return &model.WorkforceDataset{
		Years:             constant.AcademicYears,
		TotalFaculty:      jitterInts(rng, anchorTotalFaculty, 8, facultyRange),
		PctFemaleFaculty:  jitter(rng, anchorPctFemaleFaculty, 1.0, bounds.Percentage, 1),
		PctURMFaculty:     jitter(rng, anchorPctURMFaculty, 0.6, bounds.Percentage, 1),
		VoluntaryTurnover: jitter(rng, anchorVoluntaryTurnover, 0.5, bounds.Percentage, 1),
		TimeToPromotionYr: jitter(rng, anchorTimeToPromotion, 0.3, promotionRange, 1),
		DeptSatisfaction:  deptSatisfaction,
	}
}
