package model

// ResearchDataset carries the research enterprise series, one value per
// academic year. Funding figures are in millions of USD.
type ResearchDataset struct {
	Years []string `json:"years"`

	TotalFundingM  []float64 `json:"totalFundingM"`
	NIHFundingM    []float64 `json:"nihFundingM"`
	FacultyPubs    []int     `json:"facultyPubs"`
	HIndexMedian   []int     `json:"hIndexMedian"`
	ClinicalTrials []int     `json:"clinicalTrials"`
}
