package services

import (
	"context"
	"log"

	"samscout/contract-agent/internal/models"
)

// OpportunityFetcher runs the acquisition strategies in fixed order and
// returns the first non-empty result set. It never fails: every strategy
// error is swallowed, and when all live strategies come up empty the sample
// generator supplies clearly-labeled placeholder data.
type OpportunityFetcher interface {
	Fetch(ctx context.Context, keyword string, limit int) []models.Opportunity
}

type fetcherService struct {
	scraper BrowserScraper
	api     SamAPIClient
	feed    FeedClient
}

func NewFetcherService(scraper BrowserScraper, api SamAPIClient, feed FeedClient) OpportunityFetcher {
	return &fetcherService{
		scraper: scraper,
		api:     api,
		feed:    feed,
	}
}

// Fetch implements OpportunityFetcher.
func (f *fetcherService) Fetch(ctx context.Context, keyword string, limit int) []models.Opportunity {
	log.Printf("🔍 Searching SAM.gov for: %s\n", keyword)

	if opportunities, err := f.scraper.Scrape(ctx, keyword, limit); err != nil {
		log.Printf("⚠️  Browser scraping failed: %v\n", err)
	} else if len(opportunities) > 0 {
		return capOpportunities(opportunities, limit)
	}

	log.Println("   Trying API endpoint...")
	if opportunities, err := f.api.Search(ctx, keyword, limit); err != nil {
		log.Printf("   API attempt failed: %v\n", err)
	} else if len(opportunities) > 0 {
		log.Printf("✅ Found %d opportunities via API\n", len(opportunities))
		return capOpportunities(opportunities, limit)
	}

	log.Println("   Trying RSS feed...")
	if opportunities, err := f.feed.Search(ctx, keyword, limit); err != nil {
		log.Printf("   RSS attempt failed: %v\n", err)
	} else if len(opportunities) > 0 {
		log.Printf("✅ Found %d opportunities via RSS\n", len(opportunities))
		return capOpportunities(opportunities, limit)
	}

	log.Printf("⚠️  All scraping methods failed. Generating samples for %q\n", keyword)
	return GenerateSampleOpportunities(keyword, limit)
}

func capOpportunities(opportunities []models.Opportunity, limit int) []models.Opportunity {
	if limit >= 0 && len(opportunities) > limit {
		return opportunities[:limit]
	}
	return opportunities
}
