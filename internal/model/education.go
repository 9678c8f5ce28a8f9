package model

// EducationDataset carries the education outcomes series, one value per
// academic year.
type EducationDataset struct {
	Years []string `json:"years"`

	Enrollment      []int     `json:"enrollment"`
	Step1Pass       []float64 `json:"step1Pass"`
	Step2Pass       []float64 `json:"step2Pass"`
	MatchRate       []float64 `json:"matchRate"`
	TopChoiceMatch  []float64 `json:"topChoiceMatch"`
	AttritionRate   []float64 `json:"attritionRate"`
	MSQSatisfaction []float64 `json:"msqSatisfaction"`
	GQSatisfaction  []float64 `json:"gqSatisfaction"`
}
