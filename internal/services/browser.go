package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"

	"samscout/contract-agent/internal/models"
)

const samSearchURL = "https://sam.gov/search/?index=opp&page=1&sort=-relevance&sfm%5Bstatus%5D%5Bis_active%5D=true"

const resultsSelector = `[data-testid="search-results"]`

const scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// BrowserScraper drives a headless browser against the SAM.gov search page.
// The call can take tens of seconds; it either completes or times out, there
// is no cancellation once navigation has started.
type BrowserScraper interface {
	Scrape(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error)
}

type playwrightScraper struct {
	extractor       HTMLExtractor
	navTimeout      time.Duration
	selectorTimeout time.Duration
}

func NewPlaywrightScraper(extractor HTMLExtractor, navTimeout, selectorTimeout time.Duration) BrowserScraper {
	return &playwrightScraper{
		extractor:       extractor,
		navTimeout:      navTimeout,
		selectorTimeout: selectorTimeout,
	}
}

// Scrape implements BrowserScraper. Browser, context and page are all scoped
// to this one attempt and released on every exit path.
func (s *playwrightScraper) Scrape(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("🌐 Using browser automation for: %s\n", keyword)

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(scrapeUserAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	searchURL := samSearchURL + "&keywords=" + url.QueryEscape(keyword)

	log.Println("   Navigating to SAM.gov...")
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(s.navTimeout.Milliseconds())),
	}); err != nil {
		return nil, fmt.Errorf("failed to navigate: %w", err)
	}

	log.Println("   Waiting for results to load...")
	if err := page.Locator(resultsSelector).WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(float64(s.selectorTimeout.Milliseconds())),
	}); err != nil {
		// The selector changes with frontend releases; give the page a
		// flat window to render instead.
		page.WaitForTimeout(5000)
	}

	// Let late XHR-driven content settle.
	page.WaitForTimeout(3000)

	markup, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered page: %w", err)
	}

	opportunities := s.extractor.Extract(markup, keyword, limit)
	if len(opportunities) == 0 {
		log.Println("⚠️  No opportunities found in rendered page")
		return nil, nil
	}

	log.Printf("✅ Successfully scraped %d opportunities from SAM.gov\n", len(opportunities))
	return opportunities, nil
}
