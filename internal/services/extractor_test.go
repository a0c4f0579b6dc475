package services

import (
	"fmt"
	"strings"
	"testing"

	"samscout/contract-agent/internal/models"
)

const resultCardHTML = `
<div data-testid="search-result-1">
	<h3>Landscaping and Grounds Maintenance Services for Federal Campus</h3>
	<p>Notice ID: W912DY24R0055</p>
	<p>The government requires comprehensive landscaping and grounds maintenance services across multiple federal facilities in the region.</p>
	<p>Posted date: 10/15/2024</p>
	<p>Response due: 12/01/2024</p>
	<p>Department of the Army</p>
</div>`

func renderedPage(body string) string {
	return "<html><head></head><body>" + body + "</body></html>"
}

func TestExtractFromTestIDContainers(t *testing.T) {
	extractor := NewHeuristicExtractor()
	got := extractor.Extract(renderedPage(resultCardHTML), "landscaping", 3)

	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
	opp := got[0]
	if opp.Title != "Landscaping and Grounds Maintenance Services for Federal Campus" {
		t.Errorf("unexpected title: %q", opp.Title)
	}
	if opp.NoticeID != "W912DY24R0055" {
		t.Errorf("unexpected notice id: %q", opp.NoticeID)
	}
	if opp.PostedDate != "10/15/2024" {
		t.Errorf("unexpected posted date: %q", opp.PostedDate)
	}
	if opp.ResponseDeadline != "12/01/2024" {
		t.Errorf("unexpected deadline: %q", opp.ResponseDeadline)
	}
	if opp.Department != "Department of the Army" {
		t.Errorf("unexpected department: %q", opp.Department)
	}
	if !strings.Contains(opp.Description, "comprehensive landscaping") {
		t.Errorf("unexpected description: %q", opp.Description)
	}
	if opp.Type != "Active Opportunity" {
		t.Errorf("unexpected type: %q", opp.Type)
	}
}

func TestExtractFallsBackToClassNames(t *testing.T) {
	page := renderedPage(`
<div class="opportunity-card">
	<h4>Custodial and Janitorial Services at Regional Office Buildings</h4>
	<p>Solicitation number 47QSWA24Q1001 covers recurring custodial services for three regional office buildings.</p>
</div>`)

	got := NewHeuristicExtractor().Extract(page, "custodial", 3)
	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
	if got[0].NoticeID != "47QSWA24Q1001" {
		t.Errorf("unexpected notice id: %q", got[0].NoticeID)
	}
}

func TestExtractFallsBackToLinkParents(t *testing.T) {
	page := renderedPage(`
<div>
	<a href="/opp/abc123def456/view">Snow Removal Services for Northeastern Federal Facilities</a>
	<p>Multi-year snow and ice removal contract covering parking structures and access roads at several facilities.</p>
</div>`)

	got := NewHeuristicExtractor().Extract(page, "snow removal", 3)
	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
	if got[0].Title != "Snow Removal Services for Northeastern Federal Facilities" {
		t.Errorf("unexpected title: %q", got[0].Title)
	}
}

func TestExtractDiscardsShortAndGenericTitles(t *testing.T) {
	cases := []struct {
		name string
		html string
	}{
		{
			name: "short title",
			html: `<div data-testid="search-result"><h3>Too short</h3><p>Body text that is certainly long enough to pass the container filters applied earlier.</p></div>`,
		},
		{
			name: "generic label",
			html: `<div data-testid="search-result"><h3>aLL dOMAINS</h3><p>Body text that is certainly long enough to pass the container filters applied earlier.</p></div>`,
		},
		{
			name: "no title at all",
			html: `<div data-testid="search-result"><p>Body text that is certainly long enough to pass the container filters applied earlier.</p></div>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewHeuristicExtractor().Extract(renderedPage(tc.html), "anything", 3)
			if len(got) != 0 {
				t.Fatalf("expected no opportunities, got %+v", got)
			}
		})
	}
}

func TestExtractSkipsNavigationNoise(t *testing.T) {
	page := renderedPage(`
<div data-testid="search-result-nav">
	<h5>Privacy and terms of use links live here</h5>
	<a href="#">Sign in</a>
</div>`)

	got := NewHeuristicExtractor().Extract(page, "anything", 3)
	if len(got) != 0 {
		t.Fatalf("expected navigation block to be skipped, got %+v", got)
	}
}

func TestExtractHonorsLimit(t *testing.T) {
	var cards strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&cards, `
<div data-testid="search-result-%d">
	<h3>Opportunity Number %d With a Suitably Long Title</h3>
	<p>A sufficiently long description paragraph that explains what this opportunity number %d is buying.</p>
</div>`, i, i, i)
	}

	got := NewHeuristicExtractor().Extract(renderedPage(cards.String()), "anything", 3)
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
}

func TestExtractMinimumTitleLength(t *testing.T) {
	// Exactly the scrape's minimum title length must be kept; one rune
	// below must be dropped.
	keep := strings.Repeat("a", 15)
	drop := strings.Repeat("a", 14)

	page := renderedPage(fmt.Sprintf(
		`<div data-testid="search-result-a"><h3>%s</h3></div><div data-testid="search-result-b"><h3>%s</h3></div>`,
		keep, drop))

	got := NewHeuristicExtractor().Extract(page, "anything", 5)
	if len(got) != 1 {
		t.Fatalf("expected exactly the 15-rune title, got %d results", len(got))
	}
	if got[0].Title != keep {
		t.Errorf("unexpected surviving title: %q", got[0].Title)
	}
}

func TestExtractDefaultsWhenFieldsMissing(t *testing.T) {
	page := renderedPage(`
<div data-testid="search-result">
	<h3>Opportunity With Sparse Details in the Listing</h3>
</div>`)

	got := NewHeuristicExtractor().Extract(page, "fencing", 3)
	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
	opp := got[0]
	if opp.NoticeID != models.NoticeIDUnknown {
		t.Errorf("expected unknown notice id, got %q", opp.NoticeID)
	}
	if opp.PostedDate != "Recently posted" {
		t.Errorf("unexpected posted default: %q", opp.PostedDate)
	}
	if opp.ResponseDeadline != "See SAM.gov for details" {
		t.Errorf("unexpected deadline default: %q", opp.ResponseDeadline)
	}
	if opp.Department != "Federal Government" {
		t.Errorf("unexpected department default: %q", opp.Department)
	}
	if opp.Description != "Federal contract opportunity for fencing" {
		t.Errorf("unexpected description fallback: %q", opp.Description)
	}
}

func TestExtractUnparseableMarkup(t *testing.T) {
	// goquery tolerates broken markup, so the worst case is simply no
	// candidates rather than a failure.
	got := NewHeuristicExtractor().Extract("<<<not html>>>", "anything", 3)
	if len(got) != 0 {
		t.Fatalf("expected no opportunities, got %+v", got)
	}
}
