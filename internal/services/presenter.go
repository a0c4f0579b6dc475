package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"samscout/contract-agent/internal/models"
)

const emptyKeywordMessage = "<p style='color: red;'>Please enter a search keyword.</p>"

// ResultPresenter runs the end-to-end search flow and renders the outcome as
// a single HTML blob. It always returns renderable markup: degraded results
// carry sample data or error-labeled placeholders instead of failing.
type ResultPresenter interface {
	Present(ctx context.Context, keyword string, profile *models.CompanyProfile) string
}

type resultPresenter struct {
	fetcher     OpportunityFetcher
	gemini      ProposalGenerator
	openAI      ProposalGenerator
	resultLimit int
}

func NewResultPresenter(fetcher OpportunityFetcher, gemini, openAI ProposalGenerator, resultLimit int) ResultPresenter {
	return &resultPresenter{
		fetcher:     fetcher,
		gemini:      gemini,
		openAI:      openAI,
		resultLimit: resultLimit,
	}
}

// Present implements ResultPresenter.
func (p *resultPresenter) Present(ctx context.Context, keyword string, profile *models.CompanyProfile) string {
	if strings.TrimSpace(keyword) == "" {
		return emptyKeywordMessage
	}

	searchID := uuid.New()
	log.Printf("🔎 [%s] Processing search for %q\n", searchID, keyword)

	opportunities := p.fetcher.Fetch(ctx, keyword, p.resultLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Search Results for: <em>%s</em></h2>", html.EscapeString(keyword))

	for idx, opportunity := range opportunities {
		p.renderOpportunity(ctx, &b, idx+1, opportunity, profile)
	}

	log.Printf("✅ [%s] Rendered %d results\n", searchID, len(opportunities))
	return b.String()
}

func (p *resultPresenter) renderOpportunity(ctx context.Context, b *strings.Builder, position int, opportunity models.Opportunity, profile *models.CompanyProfile) {
	fmt.Fprintf(b, `
<div style='border: 2px solid #4CAF50; padding: 20px; margin: 20px 0; border-radius: 10px; background-color: #f9f9f9;'>
	<h3 style='color: #2E7D32; margin-top: 0;'>Contract %d: %s</h3>
	<div style='background-color: #e8f5e9; padding: 10px; border-radius: 5px; margin: 10px 0;'>
		<p style='color: #000; margin: 5px 0;'><strong style='color: #1B5E20;'>Notice ID:</strong> %s</p>
		<p style='color: #000; margin: 5px 0;'><strong style='color: #1B5E20;'>Department:</strong> %s</p>
		<p style='color: #000; margin: 5px 0;'><strong style='color: #1B5E20;'>Posted:</strong> %s</p>
		<p style='color: #000; margin: 5px 0;'><strong style='color: #1B5E20;'>Deadline:</strong> %s</p>
	</div>
`,
		position,
		html.EscapeString(opportunity.Title),
		html.EscapeString(opportunity.NoticeID),
		html.EscapeString(opportunity.Department),
		html.EscapeString(opportunity.PostedDate),
		html.EscapeString(opportunity.ResponseDeadline),
	)

	// Providers are only invoked for listings that look real: records with
	// the unknown-identifier sentinel or an error-labeled title render
	// their description alone.
	if opportunity.NoticeID != models.NoticeIDUnknown && !strings.Contains(opportunity.Title, "Error") {
		b.WriteString("<p style='color: #666; font-style: italic;'><em>Generating AI analysis...</em></p>")

		var geminiResult, openAIResult models.ProposalResult
		// The two provider calls share no state; run them side by side.
		g, groupCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			geminiResult = p.gemini.GenerateProposal(groupCtx, opportunity, profile)
			return nil
		})
		g.Go(func() error {
			openAIResult = p.openAI.GenerateProposal(groupCtx, opportunity, profile)
			return nil
		})
		_ = g.Wait()

		p.renderComparison(b, geminiResult, openAIResult)
	} else {
		fmt.Fprintf(b, "<p style='color: #666; font-style: italic;'>%s</p>", html.EscapeString(opportunity.Description))
	}

	b.WriteString("</div>")
}

func (p *resultPresenter) renderComparison(b *strings.Builder, geminiResult, openAIResult models.ProposalResult) {
	fmt.Fprintf(b, `
<div style='display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-top: 20px;'>
	<div style='background-color: #e8f5e9; padding: 15px; border-radius: 8px; border-left: 4px solid #4CAF50;'>
		<h4 style='color: #1B5E20; margin-top: 0;'>🤖 %s Analysis</h4>
		<h5 style='color: #2E7D32; margin-bottom: 8px;'>Summary:</h5>
		<p style='font-size: 14px; color: #000; line-height: 1.6;'>%s</p>
		<h5 style='color: #2E7D32; margin-top: 15px; margin-bottom: 8px;'>Proposal Outline:</h5>
		<p style='font-size: 14px; color: #000; line-height: 1.6;'>%s</p>
	</div>
	<div style='background-color: #e3f2fd; padding: 15px; border-radius: 8px; border-left: 4px solid #2196F3;'>
		<h4 style='color: #0D47A1; margin-top: 0;'>🤖 %s Analysis</h4>
		<h5 style='color: #1565C0; margin-bottom: 8px;'>Summary:</h5>
		<p style='font-size: 14px; color: #000; line-height: 1.6;'>%s</p>
		<h5 style='color: #1565C0; margin-top: 15px; margin-bottom: 8px;'>Proposal Outline:</h5>
		<p style='font-size: 14px; color: #000; line-height: 1.6;'>%s</p>
	</div>
</div>
`,
		html.EscapeString(p.gemini.Name()),
		htmlParagraph(geminiResult.Summary),
		htmlParagraph(geminiResult.BidOutline),
		html.EscapeString(p.openAI.Name()),
		htmlParagraph(openAIResult.Summary),
		htmlParagraph(openAIResult.BidOutline),
	)
}

func htmlParagraph(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
