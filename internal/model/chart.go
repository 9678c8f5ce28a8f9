package model

type ChartKind string

const (
	ChartKindTrend   ChartKind = "trend"
	ChartKindBar     ChartKind = "bar"
	ChartKindGauge   ChartKind = "gauge"
	ChartKindHeatmap ChartKind = "heatmap"
)

type ChartSeries struct {
	Name   string    `json:"name,omitempty"`
	Color  string    `json:"color,omitempty"`
	Values []float64 `json:"values"`
}

type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type GaugeSpec struct {
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
	Color string  `json:"color"`
}

type HeatmapSpec struct {
	X    []string   `json:"x"`
	Y    []string   `json:"y"`
	Z    [][]int    `json:"z"`
	Text [][]string `json:"text"`
	// Colors maps z values, ascending, to cell colors.
	Colors []string `json:"colors"`
}

// Chart is a declarative, renderer-agnostic chart specification. Building a
// Chart is a pure function of its inputs: the same aggregate always yields a
// deep-equal spec.
type Chart struct {
	Kind   ChartKind `json:"kind"`
	Height int       `json:"height,omitempty"`

	Categories []string      `json:"categories,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`

	Horizontal bool `json:"horizontal,omitempty"`
	Stacked    bool `json:"stacked,omitempty"`

	YRange *AxisRange `json:"yRange,omitempty"`
	Target *float64   `json:"target,omitempty"`

	ValuePrefix string `json:"valuePrefix,omitempty"`
	ValueSuffix string `json:"valueSuffix,omitempty"`

	// BarColors overrides the series color per category on bar charts.
	BarColors []string `json:"barColors,omitempty"`

	Gauge   *GaugeSpec   `json:"gauge,omitempty"`
	Heatmap *HeatmapSpec `json:"heatmap,omitempty"`

	// Placeholder marks a chart with no drawable data. The frontend renders
	// an empty card instead of a figure.
	Placeholder bool `json:"placeholder,omitempty"`
}
