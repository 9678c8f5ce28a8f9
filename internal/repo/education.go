package repo

import (
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/bounds"
)

// Anchor trajectories for the education outcomes series, one value per
// academic year in constant.AcademicYears.
var (
	anchorEnrollment      = []int{192, 195, 198, 200, 205, 210}
	anchorStep1Pass       = []float64{96.2, 97.1, 95.8, 97.5, 98.1, 97.8}
	anchorStep2Pass       = []float64{97.8, 98.2, 97.5, 98.6, 99.0, 98.4}
	anchorMatchRate       = []float64{93.5, 94.2, 91.8, 95.1, 96.3, 95.8}
	anchorTopChoiceMatch  = []float64{62.1, 64.5, 58.3, 66.2, 68.1, 67.5}
	anchorAttritionRate   = []float64{3.2, 2.8, 3.5, 2.1, 1.9, 2.2}
	anchorMSQSatisfaction = []float64{3.72, 3.68, 3.55, 3.81, 3.89, 3.92}
	anchorGQSatisfaction  = []float64{78.5, 80.2, 76.1, 82.4, 84.1, 85.3}
)

var enrollmentRange = bounds.MustRange(150, 260)

type Education struct{}

func NewEducation() *Education {
	return &Education{}
}

func (r *Education) Generate(seed uint64) *model.EducationDataset {
	rng := source(seed, saltEducation)

	return &model.EducationDataset{
		Years:           constant.AcademicYears,
		Enrollment:      jitterInts(rng, anchorEnrollment, 4, enrollmentRange),
		Step1Pass:       jitter(rng, anchorStep1Pass, 0.8, bounds.Percentage, 1),
		Step2Pass:       jitter(rng, anchorStep2Pass, 0.5, bounds.Percentage, 1),
		MatchRate:       jitter(rng, anchorMatchRate, 1.0, bounds.Percentage, 1),
		TopChoiceMatch:  jitter(rng, anchorTopChoiceMatch, 2.0, bounds.Percentage, 1),
		AttritionRate:   jitter(rng, anchorAttritionRate, 0.4, bounds.MustRange[float64](0, 10), 1),
		MSQSatisfaction: jitter(rng, anchorMSQSatisfaction, 0.08, bounds.Score, 2),
		GQSatisfaction:  jitter(rng, anchorGQSatisfaction, 1.5, bounds.Percentage, 1),
	}
}
