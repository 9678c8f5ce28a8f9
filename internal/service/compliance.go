package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/pkg/chart"
	"github.com/ie-dashboard/backend/internal/repo"
)

const (
	complianceTitle   = "Compliance"
	complianceHeader  = "Accreditation & Compliance"
	complianceCaption = "Decision focus: Are we ready for the next LCME visit, and where are the gaps?"
)

// statusZ maps a standard's status to its heatmap z value, ascending by
// severity: 0 needs attention, 1 in progress, 2 met.
var statusZ = map[string]int{
	model.StandardNeedsAttention: 0,
	model.StandardInProgress:     1,
	model.StandardMet:            2,
}

type Compliance struct {
	conf *appconfig.Config

	ComplianceRepo  *repo.Compliance
	SnapshotService *Snapshot

	views *cache.Keyed[*model.View]
}

func NewCompliance(conf *appconfig.Config, complianceRepo *repo.Compliance, snapshotService *Snapshot) *Compliance {
	return &Compliance{
		conf:            conf,
		ComplianceRepo:  complianceRepo,
		SnapshotService: snapshotService,
		views:           cache.NewKeyed[*model.View]("view:compliance"),
	}
}

func (s *Compliance) GetDataset(seed uint64) *model.ComplianceDataset {
	return s.ComplianceRepo.Generate(s.SnapshotService.Resolve(seed).Seed)
}

// Cache: view:compliance#seed:{seed}, conf.ViewCacheExpiry
func (s *Compliance) GetView(ctx context.Context, seed uint64) (*model.View, error) {
	snapshot := s.SnapshotService.Resolve(seed)

	return s.views.MutexGetSet(strconv.FormatUint(snapshot.Seed, 10), func() (*model.View, error) {
		return s.assemble(snapshot), nil
	}, s.conf.ViewCacheExpiry)
}

func (s *Compliance) assemble(snapshot model.Snapshot) *model.View {
	defer observeAssembly(constant.DomainCompliance, time.Now())

	ds := s.ComplianceRepo.Generate(snapshot.Seed)

	compliancePct := float64(ds.StandardsMet) / float64(ds.TotalStandards) * 100

	kpis := []model.KPI{
		{
			Label:     "Accreditation Status",
			Value:     ds.AccreditationStatus,
			Delta:     fmt.Sprintf("Next visit: %d", ds.NextVisitYear),
			Direction: model.DeltaPositive,
		},
		{
			Label:     "Standards Met",
			Value:     fmt.Sprintf("%d of %d", ds.StandardsMet, ds.TotalStandards),
			Delta:     fmt.Sprintf("%.1f%% compliance", compliancePct),
			Direction: model.DeltaPositive,
		},
		{
			Label:     "Open Action Items",
			Value:     strconv.Itoa(ds.OpenActionItems),
			Delta:     fmt.Sprintf("Down from %d last year", ds.OpenActionItems+3),
			Direction: model.DeltaPositive,
		},
	}

	cqiTotal := ds.CQIProjectsActive + ds.CQIProjectsComplete
	cqiPct := 0.0
	if cqiTotal > 0 {
		cqiPct = float64(ds.CQIProjectsComplete) / float64(cqiTotal) * 100
	}

	needsAttention := linq.From(ds.StandardsGrid).
		CountWithT(func(c model.StandardCell) bool { return c.Status == model.StandardNeedsAttention })

	cards := []model.ChartCard{
		{
			Title:   "ISA Completion",
			Insight: "On track for full completion before visit.",
			Chart:   chart.Gauge(ds.ISACompletion, 100, constant.ColorSuccess),
		},
		{
			Title:   "CQI Projects",
			Insight: fmt.Sprintf("%d active, %d completed this cycle.", ds.CQIProjectsActive, ds.CQIProjectsComplete),
			Chart:   chart.Gauge(cqiPct, 100, constant.ColorAccent),
		},
		{
			Title:   "Compliance Training",
			Insight: fmt.Sprintf("%.1f%% complete. Target: 98%% by June.", ds.ComplianceTrainingPct),
			Chart:   chart.Gauge(ds.ComplianceTrainingPct, 100, constant.ColorWarning),
		},
		{
			Title: "LCME Standards Compliance Map",
			Insight: fmt.Sprintf("Green = met, gold = in progress, red = needs attention. %d standards require action before %d visit.",
				needsAttention, ds.NextVisitYear),
			Chart: s.standardsHeatmap(ds),
		},
	}

	narrative := fmt.Sprintf("What this means: Accreditation posture is strong with %.1f%% of standards met. The %d open "+
		"action items are tracked and assigned. Priority before the %d visit: close the %d \"needs attention\" "+
		"standards and achieve 98%% compliance training completion by June.",
		compliancePct, ds.OpenActionItems, ds.NextVisitYear, needsAttention)

	return &model.View{
		Domain:    constant.DomainCompliance,
		Header:    complianceHeader,
		Caption:   complianceCaption,
		Snapshot:  snapshot,
		KPIs:      kpis,
		Cards:     cards,
		Narrative: narrative,
	}
}

// standardsHeatmap pivots the flat standards grid into the 12x8 status map:
// standards on the x axis, elements on the y axis.
func (s *Compliance) standardsHeatmap(ds *model.ComplianceDataset) model.Chart {
	if len(ds.StandardsGrid) == 0 {
		return chart.StatusHeatmap(nil, nil, nil, nil)
	}

	maxStandard := linq.From(ds.StandardsGrid).
		SelectT(func(c model.StandardCell) int { return c.Standard }).Max().(int)
	maxElement := linq.From(ds.StandardsGrid).
		SelectT(func(c model.StandardCell) int { return c.Element }).Max().(int)

	x := make([]string, maxStandard)
	for i := range x {
		x[i] = fmt.Sprintf("Std %d", i+1)
	}
	y := make([]string, maxElement)
	for j := range y {
		y[j] = fmt.Sprintf("Elem %d", j+1)
	}

	z := make([][]int, maxElement)
	text := make([][]string, maxElement)
	for j := range z {
		z[j] = make([]int, maxStandard)
		text[j] = make([]string, maxStandard)
	}
	for _, cell := range ds.StandardsGrid {
		z[cell.Element-1][cell.Standard-1] = statusZ[cell.Status]
		text[cell.Element-1][cell.Standard-1] = cell.Status
	}

	return chart.StatusHeatmap(x, y, z, text)
}
