package model

const (
	DeltaPositive = "positive"
	DeltaNegative = "negative"
	DeltaNeutral  = "neutral"
)

// KPI is one headline card: a label, a formatted value and an optional
// delta annotation with its display direction.
type KPI struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Prefix    string `json:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty"`
	Delta     string `json:"delta,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// ChartCard pairs a chart spec with its title and the one-line insight
// caption shown under it.
type ChartCard struct {
	Title   string `json:"title"`
	Insight string `json:"insight"`
	Chart   Chart  `json:"chart"`
}

// View is one fully assembled domain tab.
type View struct {
	Domain   string   `json:"domain"`
	Header   string   `json:"header"`
	Caption  string   `json:"caption"`
	Snapshot Snapshot `json:"snapshot"`

	KPIs      []KPI       `json:"kpis,omitempty"`
	Cards     []ChartCard `json:"cards"`
	Narrative string      `json:"narrative"`
}

// ViewDescriptor is the tab list entry for a domain view.
type ViewDescriptor struct {
	Domain  string `json:"domain"`
	Title   string `json:"title"`
	Header  string `json:"header"`
	Caption string `json:"caption"`
}

// Overview carries the five top-line KPI cards shown above the tabs.
type Overview struct {
	Snapshot Snapshot `json:"snapshot"`
	KPIs     []KPI    `json:"kpis"`
}
