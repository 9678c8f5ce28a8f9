package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/pkg/chart"
	"github.com/ie-dashboard/backend/internal/repo"
)

const (
	researchTitle   = "Research"
	researchHeader  = "Research Enterprise"
	researchCaption = "Decision focus: Is research funding growing, and are we diversifying revenue?"

	researchNarrative = "What this means: The research enterprise is on an upward trajectory across all indicators. " +
		"The strategic risk is NIH concentration - if federal funding tightens, the institution needs non-NIH " +
		"revenue streams (industry, state, philanthropy) to sustain momentum. Consider setting a target of " +
		"reducing NIH dependency to <60% of total funding within 3 years."
)

type Research struct {
	conf *appconfig.Config

	ResearchRepo    *repo.Research
	SnapshotService *Snapshot

	views *cache.Keyed[*model.View]
}

func NewResearch(conf *appconfig.Config, researchRepo *repo.Research, snapshotService *Snapshot) *Research {
	return &Research{
		conf:            conf,
		ResearchRepo:    researchRepo,
		SnapshotService: snapshotService,
		views:           cache.NewKeyed[*model.View]("view:research"),
	}
}

func (s *Research) GetDataset(seed uint64) *model.ResearchDataset {
	return s.ResearchRepo.Generate(s.SnapshotService.Resolve(seed).Seed)
}

// Cache: view:research#seed:{seed}, conf.ViewCacheExpiry
func (s *Research) GetView(ctx context.Context, seed uint64) (*model.View, error) {
	snapshot := s.SnapshotService.Resolve(seed)

	return s.views.MutexGetSet(strconv.FormatUint(snapshot.Seed, 10), func() (*model.View, error) {
		return s.assemble(snapshot), nil
	}, s.conf.ViewCacheExpiry)
}

func (s *Research) assemble(snapshot model.Snapshot) *model.View {
	defer observeAssembly(constant.DomainResearch, time.Now())

	ds := s.ResearchRepo.Generate(snapshot.Seed)

	nonNIH := lo.Map(ds.TotalFundingM, func(t float64, i int) float64 {
		return t - ds.NIHFundingM[i]
	})
	nihShare := lo.Sum(ds.NIHFundingM) / lo.Sum(ds.TotalFundingM) * 100

	cards := []model.ChartCard{
		{
			Title: "Total Research Funding ($M)",
			Insight: fmt.Sprintf("%.0f%% growth over 6 years. NIH share remains ~%.0f%%, suggesting healthy but concentrated portfolio.",
				growthPct(ds.TotalFundingM), nihShare),
			Chart: chart.StackedBar(ds.Years, []model.ChartSeries{
				{Name: "NIH", Color: constant.ColorAccent, Values: ds.NIHFundingM},
				{Name: "Other", Color: constant.ColorWarning, Values: nonNIH},
			}, "$", "M"),
		},
		{
			Title: "Faculty Publications (Peer-Reviewed)",
			Insight: fmt.Sprintf("Consistent upward trend. %.0f%% increase since 2019-20 reflects hiring and productivity gains.",
				growthPct(ds.FacultyPubs)),
			Chart: chart.Trend(ds.Years, toFloats(ds.FacultyPubs), constant.ColorPrimary, chart.TrendOpt{}),
		},
		{
			Title: "Active Clinical Trials",
			Insight: fmt.Sprintf("%.0f%% growth signals expanding clinical research enterprise and industry partnerships.",
				growthPct(ds.ClinicalTrials)),
			Chart: chart.Trend(ds.Years, toFloats(ds.ClinicalTrials), constant.ColorSuccess, chart.TrendOpt{}),
		},
		{
			Title:   "Median Faculty h-index",
			Insight: "Steady improvement. Crossing 20 is a meaningful benchmark for research-intensive schools.",
			Chart: chart.Trend(ds.Years, toFloats(ds.HIndexMedian), constant.ColorAccent, chart.TrendOpt{
				YRange: chart.YRange(15, 25),
			}),
		},
	}

	return &model.View{
		Domain:    constant.DomainResearch,
		Header:    researchHeader,
		Caption:   researchCaption,
		Snapshot:  snapshot,
		Cards:     cards,
		Narrative: researchNarrative,
	}
}
