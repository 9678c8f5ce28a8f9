package constant

const (
	DomainEducation  = "education"
	DomainResearch   = "research"
	DomainWorkforce  = "workforce"
	DomainCompliance = "compliance"
)

// Domains lists the four dashboard views in display order.
var Domains = []string{
	DomainEducation,
	DomainResearch,
	DomainWorkforce,
	DomainCompliance,
}

var DomainMap = map[string]struct{}{
	DomainEducation:  {},
	DomainResearch:   {},
	DomainWorkforce:  {},
	DomainCompliance: {},
}

// AcademicYears covers the six-year trend window every time series spans.
var AcademicYears = []string{"2019-20", "2020-21", "2021-22", "2022-23", "2023-24", "2024-25"}

// Departments are the clinical departments reported in the workforce view.
var Departments = []string{
	"Internal Medicine", "Surgery", "Pediatrics", "OB-GYN",
	"Psychiatry", "Family Medicine", "Neurology", "Emergency Medicine",
}
