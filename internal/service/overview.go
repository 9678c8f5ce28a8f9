package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/repo"
)

type Overview struct {
	conf *appconfig.Config

	EducationRepo   *repo.Education
	ResearchRepo    *repo.Research
	WorkforceRepo   *repo.Workforce
	ComplianceRepo  *repo.Compliance
	SnapshotService *Snapshot

	overviews *cache.Keyed[*model.Overview]
}

func NewOverview(
	conf *appconfig.Config,
	educationRepo *repo.Education,
	researchRepo *repo.Research,
	workforceRepo *repo.Workforce,
	complianceRepo *repo.Compliance,
	snapshotService *Snapshot,
) *Overview {
	return &Overview{
		conf:            conf,
		EducationRepo:   educationRepo,
		ResearchRepo:    researchRepo,
		WorkforceRepo:   workforceRepo,
		ComplianceRepo:  complianceRepo,
		SnapshotService: snapshotService,
		overviews:       cache.NewKeyed[*model.Overview]("overview"),
	}
}

// Cache: overview#seed:{seed}, conf.ViewCacheExpiry
func (s *Overview) GetOverview(ctx context.Context, seed uint64) (*model.Overview, error) {
	snapshot := s.SnapshotService.Resolve(seed)

	return s.overviews.MutexGetSet(strconv.FormatUint(snapshot.Seed, 10), func() (*model.Overview, error) {
		return s.assemble(snapshot), nil
	}, s.conf.ViewCacheExpiry)
}

// assemble computes the five top-line KPI cards shown above the domain tabs.
func (s *Overview) assemble(snapshot model.Snapshot) *model.Overview {
	defer observeAssembly("overview", time.Now())

	ed := s.EducationRepo.Generate(snapshot.Seed)
	res := s.ResearchRepo.Generate(snapshot.Seed)
	wf := s.WorkforceRepo.Generate(snapshot.Seed)
	comp := s.ComplianceRepo.Generate(snapshot.Seed)

	enrollmentDelta := yearDelta(ed.Enrollment)
	matchDelta := yearDelta(ed.MatchRate)
	fundingDelta := yearDelta(res.TotalFundingM)
	facultyDelta := yearDelta(wf.TotalFaculty)

	kpis := []model.KPI{
		{
			Label:     "Total Enrollment",
			Value:     strconv.Itoa(latest(ed.Enrollment)),
			Delta:     fmt.Sprintf("%+d vs. prior year", enrollmentDelta),
			Direction: direction(enrollmentDelta),
		},
		{
			Label:     "Match Rate",
			Value:     fmt.Sprintf("%.1f", latest(ed.MatchRate)),
			Suffix:    "%",
			Delta:     signed("%.1f", matchDelta) + "pp vs. prior year",
			Direction: direction(matchDelta),
		},
		{
			Label:     "Research Funding",
			Value:     fmt.Sprintf("%.1f", latest(res.TotalFundingM)),
			Prefix:    "$",
			Suffix:    "M",
			Delta:     signedMoney(fundingDelta) + " vs. prior year",
			Direction: direction(fundingDelta),
		},
		{
			Label:     "Faculty Count",
			Value:     strconv.Itoa(latest(wf.TotalFaculty)),
			Delta:     fmt.Sprintf("%+d net new", facultyDelta),
			Direction: direction(facultyDelta),
		},
		{
			Label:     "LCME Standards Met",
			Value:     fmt.Sprintf("%d/%d", comp.StandardsMet, comp.TotalStandards),
			Delta:     fmt.Sprintf("%.1f%% compliance", float64(comp.StandardsMet)/float64(comp.TotalStandards)*100),
			Direction: model.DeltaPositive,
		},
	}

	return &model.Overview{
		Snapshot: snapshot,
		KPIs:     kpis,
	}
}

func signedMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.1fM", -v)
	}
	return fmt.Sprintf("+$%.1fM", v)
}
