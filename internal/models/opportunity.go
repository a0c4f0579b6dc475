package models

// Opportunity is one SAM.gov contract listing normalized to a fixed shape.
// Every field is always populated; unknown values carry sentinel text so the
// presentation layer never has to nil-check.
type Opportunity struct {
	Title            string `json:"title"`
	NoticeID         string `json:"notice_id"`
	Description      string `json:"description"`
	PostedDate       string `json:"posted_date"`
	ResponseDeadline string `json:"response_deadline"`
	Department       string `json:"department"`
	Type             string `json:"type"`
	NAICSCode        string `json:"naics_code"`
}

// NoticeIDUnknown marks records whose identifier could not be determined.
const NoticeIDUnknown = "N/A"
