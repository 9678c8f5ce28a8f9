package model

type DeptScore struct {
	Department string  `json:"department"`
	Score      float64 `json:"score"`
}

// WorkforceDataset carries the faculty & workforce series, one value per
// academic year, plus the per-department satisfaction snapshot.
type WorkforceDataset struct {
	Years []string `json:"years"`

	TotalFaculty      []int     `json:"totalFaculty"`
	PctFemaleFaculty  []float64 `json:"pctFemaleFaculty"`
	PctURMFaculty     []float64 `json:"pctUrmFaculty"`
	VoluntaryTurnover []float64 `json:"voluntaryTurnover"`
	TimeToPromotionYr []float64 `json:"timeToPromotionYr"`

	DeptSatisfaction []DeptScore `json:"deptSatisfaction"`
}
