package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
)

var years = []string{"2019-20", "2020-21", "2021-22"}

func TestTrendDeterminism(t *testing.T) {
	values := []float64{96.2, 97.1, 95.8}
	opt := TrendOpt{Suffix: "%", YRange: YRange(90, 100), Target: Target(96)}

	a := Trend(years, values, constant.ColorSuccess, opt)
	b := Trend(years, values, constant.ColorSuccess, opt)

	assert.Equal(t, a, b, "identical input must yield an identical spec")
}

func TestTrendEmptyInputIsPlaceholder(t *testing.T) {
	c := Trend(years, nil, constant.ColorAccent, TrendOpt{})
	assert.True(t, c.Placeholder)
	assert.Empty(t, c.Series)

	c = Trend(nil, []float64{1, 2, 3}, constant.ColorAccent, TrendOpt{})
	assert.True(t, c.Placeholder)
}

func TestMultiTrendDropsEmptySeries(t *testing.T) {
	c := MultiTrend(years, []model.ChartSeries{
		{Name: "% Female", Color: constant.ColorAccent, Values: []float64{38.2, 39.1, 40.5}},
		{Name: "% URM", Color: constant.ColorWarning},
	}, TrendOpt{Suffix: "%"})

	require.Len(t, c.Series, 1)
	assert.Equal(t, "% Female", c.Series[0].Name)
}

func TestBarHorizontalHeightGrowsWithCategories(t *testing.T) {
	categories := make([]string, 8)
	values := make([]float64, 8)
	for i := range categories {
		categories[i] = "Dept"
		values[i] = 3.5
	}

	c := Bar(categories, values, constant.ColorAccent, BarOpt{Horizontal: true})
	assert.Equal(t, 280, c.Height)
}

func TestGauge(t *testing.T) {
	c := Gauge(97.2, 100, constant.ColorSuccess)
	require.NotNil(t, c.Gauge)
	assert.Equal(t, 97.2, c.Gauge.Value)

	c = Gauge(50, 0, constant.ColorSuccess)
	assert.True(t, c.Placeholder)
}

func TestStatusHeatmapEmpty(t *testing.T) {
	c := StatusHeatmap(nil, nil, nil, nil)
	assert.True(t, c.Placeholder)
	assert.Nil(t, c.Heatmap)
}
