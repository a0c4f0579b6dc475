package models

// SearchRequest is the payload of the search form. Only the keyword is
// required; the company fields feed the optional CompanyProfile.
type SearchRequest struct {
	Keyword               string `json:"keyword" form:"keyword"`
	CompanyName           string `json:"company_name" form:"company_name"`
	Experience            string `json:"experience" form:"experience"`
	Capabilities          string `json:"capabilities" form:"capabilities"`
	Certifications        string `json:"certifications" form:"certifications"`
	PastPerformance       string `json:"past_performance" form:"past_performance"`
	CompetitiveAdvantages string `json:"competitive_advantages" form:"competitive_advantages"`
}

// Profile returns the company profile carried by the request, or nil when no
// company name was supplied.
func (r *SearchRequest) Profile() *CompanyProfile {
	profile := &CompanyProfile{
		CompanyName:           r.CompanyName,
		Experience:            r.Experience,
		Capabilities:          r.Capabilities,
		Certifications:        r.Certifications,
		PastPerformance:       r.PastPerformance,
		CompetitiveAdvantages: r.CompetitiveAdvantages,
	}
	if !profile.IsSet() {
		return nil
	}
	return profile
}
