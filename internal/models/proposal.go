package models

// ProposalResult is what one LLM provider produced for one opportunity: a
// summary of the listing and a draft bid outline.
type ProposalResult struct {
	Summary    string `json:"summary"`
	BidOutline string `json:"bid_outline"`
}
