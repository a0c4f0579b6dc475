package services

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"samscout/contract-agent/internal/models"
)

// GenerateSampleOpportunities returns hand-authored placeholder listings for
// when every live strategy came up empty. The output is deterministic for a
// given keyword and every notice ID carries the DEMO- prefix so callers can
// tell synthetic data from live data.
func GenerateSampleOpportunities(keyword string, limit int) []models.Opportunity {
	titled := titleCase(keyword)

	samples := []models.Opportunity{
		{
			Title:            fmt.Sprintf("%s Services and Maintenance Contract", titled),
			NoticeID:         "DEMO-2024-001",
			Description:      fmt.Sprintf("The Department of General Services is seeking qualified contractors to provide comprehensive %s services for federal facilities. This includes regular maintenance, seasonal work, equipment provision, and emergency response services. Contractors must demonstrate experience with similar government contracts and meet all federal compliance requirements. The contract period is for a base year with four option years.", keyword),
			PostedDate:       "2024-10-15",
			ResponseDeadline: "2024-12-01",
			Department:       "Department of General Services",
			Type:             "Combined Synopsis/Solicitation",
			NAICSCode:        "561730",
		},
		{
			Title:            fmt.Sprintf("Multi-Site %s and Landscape Management", titled),
			NoticeID:         "DEMO-2024-002",
			Description:      fmt.Sprintf("This procurement is for professional %s and landscape management services at multiple federal buildings and grounds in the region. The scope includes design consultation, plant material selection and installation, irrigation system maintenance, integrated pest management, and sustainable landscape practices. Preference given to contractors with LEED certifications, sustainable %s practices, and veteran-owned business status.", keyword, keyword),
			PostedDate:       "2024-10-20",
			ResponseDeadline: "2024-12-15",
			Department:       "General Services Administration",
			Type:             "Solicitation",
			NAICSCode:        "561730",
		},
		{
			Title:            fmt.Sprintf("%s Equipment and Materials Supply Contract", titled),
			NoticeID:         "DEMO-2024-003",
			Description:      fmt.Sprintf("The Department of Veterans Affairs requires %s equipment, materials, and supplies for multiple medical center locations nationwide. This includes commercial-grade equipment, maintenance tools, organic materials, and professional installation services. Deliveries must meet federal sustainability standards and support small business participation. This is a multi-year indefinite delivery/indefinite quantity (IDIQ) contract with a ceiling of $5M.", keyword),
			PostedDate:       "2024-10-25",
			ResponseDeadline: "2024-12-20",
			Department:       "Department of Veterans Affairs",
			Type:             "Presolicitation",
			NAICSCode:        "561730",
		},
	}

	if limit < 0 {
		limit = 0
	}
	if limit < len(samples) {
		samples = samples[:limit]
	}
	return samples
}

func titleCase(s string) string {
	return cases.Title(language.AmericanEnglish).String(s)
}
