package services

import (
	"fmt"
	"strings"

	"samscout/contract-agent/internal/models"
)

// analystSystemInstruction establishes the persona both providers respond
// under.
const analystSystemInstruction = "You are a professional government contract analyst and bid writer with expertise in crafting winning proposals."

const bidOutlineUnavailable = "Unable to generate proposal."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProposalPrompt creates the analysis prompt for one opportunity,
// appending the company context when a profile was supplied.
func (pb *PromptBuilder) BuildProposalPrompt(opportunity models.Opportunity, profile *models.CompanyProfile) string {
	companyContext := ""
	if profile.IsSet() {
		companyContext = fmt.Sprintf(`

When creating the proposal outline, incorporate these company strengths and details:
Company Name: %s
Years of Experience: %s
Key Capabilities: %s
Certifications: %s
Past Performance: %s
Competitive Advantages: %s

Tailor the proposal to highlight how this company's specific strengths match the contract requirements.`,
			profile.CompanyName,
			profile.Experience,
			profile.Capabilities,
			profile.Certifications,
			profile.PastPerformance,
			profile.CompetitiveAdvantages,
		)
	}

	return fmt.Sprintf(`You are a professional contract analyst and bid writer. Analyze this government contract opportunity:

Title: %s
Department: %s
Posted: %s
Deadline: %s
Description: %s%s

Please provide:
1. A concise summary of the key requirements, scope, and timeline
2. A brief 1-2 paragraph proposal outline that addresses the contract requirements, highlights relevant qualifications, and differentiators`,
		opportunity.Title,
		opportunity.Department,
		opportunity.PostedDate,
		opportunity.ResponseDeadline,
		opportunity.Description,
		companyContext,
	)
}

// SplitProposalText divides generated text into a summary and a bid outline.
// When the text shows the numbered structure the prompt asked for, it splits
// at the first blank line; otherwise it falls back to the rune midpoint. The
// two halves always concatenate back to the source order.
func SplitProposalText(content string) models.ProposalResult {
	if strings.Contains(strings.ToLower(content), "proposal outline") || strings.Contains(content, "2.") {
		if idx := strings.Index(content, "\n\n"); idx >= 0 {
			return models.ProposalResult{
				Summary:    content[:idx],
				BidOutline: content[idx+2:],
			}
		}
	}

	runes := []rune(content)
	mid := len(runes) / 2
	return models.ProposalResult{
		Summary:    string(runes[:mid]),
		BidOutline: string(runes[mid:]),
	}
}

// proposalFailure converts a provider error into the renderable placeholder
// result; provider failures never propagate past the generator boundary.
func proposalFailure(providerLabel string, err error) models.ProposalResult {
	return models.ProposalResult{
		Summary:    fmt.Sprintf("Error generating %s response: %v", providerLabel, err),
		BidOutline: bidOutlineUnavailable,
	}
}
