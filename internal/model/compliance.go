package model

const (
	StandardMet            = "Met"
	StandardInProgress     = "In Progress"
	StandardNeedsAttention = "Needs Attention"
)

type StandardCell struct {
	Standard int    `json:"standard"`
	Element  int    `json:"element"`
	ID       string `json:"id"`
	Status   string `json:"status"`
}

// ComplianceDataset carries the accreditation & compliance snapshot.
type ComplianceDataset struct {
	StandardsMet        int    `json:"standardsMet"`
	TotalStandards      int    `json:"totalStandards"`
	AccreditationStatus string `json:"accreditationStatus"`
	NextVisitYear       int    `json:"nextVisitYear"`
	OpenActionItems     int    `json:"openActionItems"`

	ISACompletion         float64 `json:"isaCompletion"`
	CQIProjectsActive     int     `json:"cqiProjectsActive"`
	CQIProjectsComplete   int     `json:"cqiProjectsComplete"`
	ComplianceTrainingPct float64 `json:"complianceTrainingPct"`

	// StandardsGrid is the 12x8 LCME standards status map rendered as a
	// heatmap on the compliance view.
	StandardsGrid []StandardCell `json:"standardsGrid"`
}
