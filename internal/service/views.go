package service

import (
	"context"

	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/dasherr"
)

// Views dispatches across the four independent domain views. Each view
// renders from its own service without touching the others.
type Views struct {
	EducationService  *Education
	ResearchService   *Research
	WorkforceService  *Workforce
	ComplianceService *Compliance
}

func NewViews(
	educationService *Education,
	researchService *Research,
	workforceService *Workforce,
	complianceService *Compliance,
) *Views {
	return &Views{
		EducationService:  educationService,
		ResearchService:   researchService,
		WorkforceService:  workforceService,
		ComplianceService: complianceService,
	}
}

func (s *Views) Descriptors() []model.ViewDescriptor {
	return []model.ViewDescriptor{
		{Domain: constant.DomainEducation, Title: educationTitle, Header: educationHeader, Caption: educationCaption},
		{Domain: constant.DomainResearch, Title: researchTitle, Header: researchHeader, Caption: researchCaption},
		{Domain: constant.DomainWorkforce, Title: workforceTitle, Header: workforceHeader, Caption: workforceCaption},
		{Domain: constant.DomainCompliance, Title: complianceTitle, Header: complianceHeader, Caption: complianceCaption},
	}
}

func (s *Views) GetView(ctx context.Context, domain string, seed uint64) (*model.View, error) {
	switch domain {
	case constant.DomainEducation:
		return s.EducationService.GetView(ctx, seed)
	case constant.DomainResearch:
		return s.ResearchService.GetView(ctx, seed)
	case constant.DomainWorkforce:
		return s.WorkforceService.GetView(ctx, seed)
	case constant.DomainCompliance:
		return s.ComplianceService.GetView(ctx, seed)
	default:
		return nil, dasherr.ErrNotFound.Msg("unknown domain: %s", domain)
	}
}

// GetDataset returns the raw synthetic dataset backing a domain view, for
// the export endpoint.
func (s *Views) GetDataset(domain string, seed uint64) (any, error) {
	switch domain {
	case constant.DomainEducation:
		return s.EducationService.GetDataset(seed), nil
	case constant.DomainResearch:
		return s.ResearchService.GetDataset(seed), nil
	case constant.DomainWorkforce:
		return s.WorkforceService.GetDataset(seed), nil
	case constant.DomainCompliance:
		return s.ComplianceService.GetDataset(seed), nil
	default:
		return nil, dasherr.ErrNotFound.Msg("unknown domain: %s", domain)
	}
}
