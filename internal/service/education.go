package service

import (
	"context"
	"strconv"
	"time"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/pkg/chart"
	"github.com/ie-dashboard/backend/internal/repo"
)

const (
	educationTitle   = "Education"
	educationHeader  = "Education Outcomes"
	educationCaption = "Decision focus: Are students succeeding, and where do we need to intervene?"

	educationNarrative = "What this means: Education outcomes are strong and improving. The match rate dip in 2020-21 " +
		"reflected national pandemic disruption, not a structural weakness. The key strategic question is whether " +
		"rising satisfaction translates to improved GQ metrics, which directly affect reputation and rankings."
)

type Education struct {
	conf *appconfig.Config

	EducationRepo   *repo.Education
	SnapshotService *Snapshot

	views *cache.Keyed[*model.View]
}

func NewEducation(conf *appconfig.Config, educationRepo *repo.Education, snapshotService *Snapshot) *Education {
	return &Education{
		conf:            conf,
		EducationRepo:   educationRepo,
		SnapshotService: snapshotService,
		views:           cache.NewKeyed[*model.View]("view:education"),
	}
}

func (s *Education) GetDataset(seed uint64) *model.EducationDataset {
	return s.EducationRepo.Generate(s.SnapshotService.Resolve(seed).Seed)
}

// Cache: view:education#seed:{seed}, conf.ViewCacheExpiry
func (s *Education) GetView(ctx context.Context, seed uint64) (*model.View, error) {
	snapshot := s.SnapshotService.Resolve(seed)

	return s.views.MutexGetSet(strconv.FormatUint(snapshot.Seed, 10), func() (*model.View, error) {
		return s.assemble(snapshot), nil
	}, s.conf.ViewCacheExpiry)
}

func (s *Education) assemble(snapshot model.Snapshot) *model.View {
	defer observeAssembly(constant.DomainEducation, time.Now())

	ds := s.EducationRepo.Generate(snapshot.Seed)

	cards := []model.ChartCard{
		{
			Title:   "USMLE Step 1 Pass Rate (%)",
			Insight: "Consistently above national average. Stable performance suggests curriculum strength.",
			Chart: chart.Trend(ds.Years, ds.Step1Pass, constant.ColorSuccess, chart.TrendOpt{
				Suffix: "%",
				YRange: chart.YRange(90, 100),
				Target: chart.Target(96.0),
			}),
		},
		{
			Title:   "Residency Match Rate (%)",
			Insight: "Recovered from 2021 dip. Watch whether top-choice rate sustains above 65%.",
			Chart: chart.Trend(ds.Years, ds.MatchRate, constant.ColorAccent, chart.TrendOpt{
				Suffix: "%",
				YRange: chart.YRange(85, 100),
				Target: chart.Target(94.0),
			}),
		},
		{
			Title:   "Student Satisfaction (MSQ Overall, 1-5 Scale)",
			Insight: "Steady climb since COVID low in 2020-21. Approaching 4.0 threshold for first time.",
			Chart: chart.Trend(ds.Years, ds.MSQSatisfaction, constant.ColorWarning, chart.TrendOpt{
				YRange: chart.YRange(3.0, 4.5),
				Target: chart.Target(4.0),
			}),
		},
		{
			Title:   "Attrition Rate (%)",
			Insight: "Below 2.5% for two consecutive years. Retention initiatives are working.",
			Chart: chart.Trend(ds.Years, ds.AttritionRate, constant.ColorDanger, chart.TrendOpt{
				Suffix: "%",
				YRange: chart.YRange(0, 5),
				Target: chart.Target(2.5),
			}),
		},
	}

	return &model.View{
		Domain:    constant.DomainEducation,
		Header:    educationHeader,
		Caption:   educationCaption,
		Snapshot:  snapshot,
		Cards:     cards,
		Narrative: educationNarrative,
	}
}
