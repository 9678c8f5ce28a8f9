// Package chart builds declarative chart specifications from computed
// aggregates. Builders are pure: identical inputs produce deep-equal specs,
// and empty inputs degrade to a placeholder spec instead of failing.
package chart

import (
	"github.com/samber/lo"

	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
)

const defaultHeight = 220

func placeholder(kind model.ChartKind) model.Chart {
	return model.Chart{
		Kind:        kind,
		Placeholder: true,
	}
}

// TrendOpt carries the optional axis decorations of a trend chart.
type TrendOpt struct {
	Suffix string
	YRange *model.AxisRange
	Target *float64
}

func Target(v float64) *float64 {
	return &v
}

func YRange(min, max float64) *model.AxisRange {
	return &model.AxisRange{Min: min, Max: max}
}

// Trend builds a single-series line chart over the given categories.
func Trend(categories []string, values []float64, color string, opt TrendOpt) model.Chart {
	if len(categories) == 0 || len(values) == 0 {
		return placeholder(model.ChartKindTrend)
	}

	return model.Chart{
		Kind:       model.ChartKindTrend,
		Height:     defaultHeight,
		Categories: categories,
		Series: []model.ChartSeries{
			{Color: color, Values: values},
		},
		YRange:      opt.YRange,
		Target:      opt.Target,
		ValueSuffix: opt.Suffix,
	}
}

// MultiTrend builds a line chart with several named series sharing one axis.
func MultiTrend(categories []string, series []model.ChartSeries, opt TrendOpt) model.Chart {
	series = lo.Filter(series, func(s model.ChartSeries, _ int) bool {
		return len(s.Values) > 0
	})
	if len(categories) == 0 || len(series) == 0 {
		return placeholder(model.ChartKindTrend)
	}

	return model.Chart{
		Kind:        model.ChartKindTrend,
		Height:      defaultHeight,
		Categories:  categories,
		Series:      series,
		YRange:      opt.YRange,
		Target:      opt.Target,
		ValueSuffix: opt.Suffix,
	}
}

// BarOpt carries the optional decorations of a bar chart.
type BarOpt struct {
	Suffix     string
	Horizontal bool
	YRange     *model.AxisRange
	// Colors overrides the bar color per category; must match the
	// categories length when set.
	Colors []string
}

// Bar builds a single-series bar chart.
func Bar(categories []string, values []float64, color string, opt BarOpt) model.Chart {
	if len(categories) == 0 || len(values) == 0 {
		return placeholder(model.ChartKindBar)
	}

	height := defaultHeight
	if opt.Horizontal {
		// Horizontal bars grow with the category count, as thin rows read
		// poorly below ~35px each.
		if h := len(categories) * 35; h > height {
			height = h
		}
	}

	return model.Chart{
		Kind:       model.ChartKindBar,
		Height:     height,
		Categories: categories,
		Series: []model.ChartSeries{
			{Color: color, Values: values},
		},
		Horizontal:  opt.Horizontal,
		YRange:      opt.YRange,
		BarColors:   opt.Colors,
		ValueSuffix: opt.Suffix,
	}
}

// StackedBar builds a stacked bar chart from several named series.
func StackedBar(categories []string, series []model.ChartSeries, prefix, suffix string) model.Chart {
	series = lo.Filter(series, func(s model.ChartSeries, _ int) bool {
		return len(s.Values) > 0
	})
	if len(categories) == 0 || len(series) == 0 {
		return placeholder(model.ChartKindBar)
	}

	return model.Chart{
		Kind:        model.ChartKindBar,
		Height:      240,
		Categories:  categories,
		Series:      series,
		Stacked:     true,
		ValuePrefix: prefix,
		ValueSuffix: suffix,
	}
}

// Gauge builds an angular gauge showing value against max.
func Gauge(value, max float64, color string) model.Chart {
	if max <= 0 {
		return placeholder(model.ChartKindGauge)
	}

	return model.Chart{
		Kind:   model.ChartKindGauge,
		Height: 160,
		Gauge: &model.GaugeSpec{
			Value: value,
			Max:   max,
			Color: color,
		},
		ValueSuffix: "%",
	}
}

// StatusHeatmap builds the standards compliance map: cells colored danger,
// warning or success by ascending status severity.
func StatusHeatmap(x, y []string, z [][]int, text [][]string) model.Chart {
	if len(x) == 0 || len(y) == 0 || len(z) == 0 {
		return placeholder(model.ChartKindHeatmap)
	}

	return model.Chart{
		Kind:   model.ChartKindHeatmap,
		Height: 250,
		Heatmap: &model.HeatmapSpec{
			X:      x,
			Y:      y,
			Z:      z,
			Text:   text,
			Colors: []string{constant.ColorDanger, constant.ColorWarning, constant.ColorSuccess},
		},
	}
}
