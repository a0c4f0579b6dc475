package models

import "strings"

// CompanyProfile holds the optional company details the user supplies to get
// personalized proposals. All fields are free text.
type CompanyProfile struct {
	CompanyName           string `json:"company_name"`
	Experience            string `json:"experience"`
	Capabilities          string `json:"capabilities"`
	Certifications        string `json:"certifications"`
	PastPerformance       string `json:"past_performance"`
	CompetitiveAdvantages string `json:"competitive_advantages"`
}

// IsSet reports whether the profile should be injected into prompts. A
// profile without a company name is treated as absent.
func (p *CompanyProfile) IsSet() bool {
	return p != nil && strings.TrimSpace(p.CompanyName) != ""
}
