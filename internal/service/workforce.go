package service

import (
	"context"
	"strconv"
	"time"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/pkg/chart"
	"github.com/ie-dashboard/backend/internal/repo"
)

const (
	workforceTitle   = "Workforce"
	workforceHeader  = "Faculty & Workforce"
	workforceCaption = "Decision focus: Are we building a diverse, stable, and productive workforce?"

	workforceNarrative = "What this means: The workforce is stabilizing and diversifying. Two priorities emerge: " +
		"(1) URM faculty recruitment needs dedicated pipeline programs to reach 18% by 2027, and " +
		"(2) department-level satisfaction gaps require chair-specific action plans. The declining time-to-promotion " +
		"is a competitive advantage for recruitment."

	// Departments scoring below this threshold are flagged for targeted
	// leadership development.
	deptScoreThreshold = 3.5
)

type Workforce struct {
	conf *appconfig.Config

	WorkforceRepo   *repo.Workforce
	SnapshotService *Snapshot

	views *cache.Keyed[*model.View]
}

func NewWorkforce(conf *appconfig.Config, workforceRepo *repo.Workforce, snapshotService *Snapshot) *Workforce {
	return &Workforce{
		conf:            conf,
		WorkforceRepo:   workforceRepo,
		SnapshotService: snapshotService,
		views:           cache.NewKeyed[*model.View]("view:workforce"),
	}
}

func (s *Workforce) GetDataset(seed uint64) *model.WorkforceDataset {
	return s.WorkforceRepo.Generate(s.SnapshotService.Resolve(seed).Seed)
}

// Cache: view:workforce#seed:{seed}, conf.ViewCacheExpiry
func (s *Workforce) GetView(ctx context.Context, seed uint64) (*model.View, error) {
	snapshot := s.SnapshotService.Resolve(seed)

	return s.views.MutexGetSet(strconv.FormatUint(snapshot.Seed, 10), func() (*model.View, error) {
		return s.assemble(snapshot), nil
	}, s.conf.ViewCacheExpiry)
}

func (s *Workforce) assemble(snapshot model.Snapshot) *model.View {
	defer observeAssembly(constant.DomainWorkforce, time.Now())

	ds := s.WorkforceRepo.Generate(snapshot.Seed)

	// Lowest-scoring departments first, same as the original chart, so the
	// ones needing attention sit at the top of the horizontal bars.
	var sortedScores []model.DeptScore
	linq.From(ds.DeptSatisfaction).
		OrderByT(func(d model.DeptScore) float64 { return d.Score }).
		ToSlice(&sortedScores)

	depts := lo.Map(sortedScores, func(d model.DeptScore, _ int) string { return d.Department })
	scores := lo.Map(sortedScores, func(d model.DeptScore, _ int) float64 { return d.Score })
	barColors := lo.Map(scores, func(s float64, _ int) string {
		if s < deptScoreThreshold {
			return constant.ColorDanger
		}
		return constant.ColorAccent
	})

	cards := []model.ChartCard{
		{
			Title:   "Faculty Diversity Trends",
			Insight: "Both female and URM representation are rising, but URM pace needs to accelerate to meet strategic goals.",
			Chart: chart.MultiTrend(ds.Years, []model.ChartSeries{
				{Name: "% Female", Color: constant.ColorAccent, Values: ds.PctFemaleFaculty},
				{Name: "% URM", Color: constant.ColorWarning, Values: ds.PctURMFaculty},
			}, chart.TrendOpt{
				Suffix: "%",
				YRange: chart.YRange(0, 50),
			}),
		},
		{
			Title:   "Voluntary Turnover Rate (%)",
			Insight: "Below 7.5% and declining. Retention strategies and mentorship investment are paying off.",
			Chart: chart.Trend(ds.Years, ds.VoluntaryTurnover, constant.ColorDanger, chart.TrendOpt{
				Suffix: "%",
				YRange: chart.YRange(4, 12),
				Target: chart.Target(7.5),
			}),
		},
		{
			Title:   "Median Time to Promotion (Years)",
			Insight: "Trending below 6 years for the first time. Streamlined review processes are accelerating career progression.",
			Chart: chart.Trend(ds.Years, ds.TimeToPromotionYr, constant.ColorPrimary, chart.TrendOpt{
				Suffix: " yr",
				YRange: chart.YRange(4, 8),
				Target: chart.Target(6.0),
			}),
		},
		{
			Title:   "Department Satisfaction Scores (1-5)",
			Insight: "Most departments above 3.5. Identify low-scoring departments for targeted leadership development.",
			Chart: chart.Bar(depts, scores, constant.ColorAccent, chart.BarOpt{
				Horizontal: true,
				YRange:     chart.YRange(0, 5),
				Colors:     barColors,
			}),
		},
	}

	return &model.View{
		Domain:    constant.DomainWorkforce,
		Header:    workforceHeader,
		Caption:   workforceCaption,
		Snapshot:  snapshot,
		Cards:     cards,
		Narrative: workforceNarrative,
	}
}
