package services

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"samscout/contract-agent/internal/models"
)

const samFeedURL = "https://sam.gov/api/prod/opportunity-feed/rss"

const (
	feedTitleLimit       = 200
	feedDescriptionLimit = 1500
)

// feedNoticeIDPattern matches solicitation-style codes embedded in item links.
var feedNoticeIDPattern = regexp.MustCompile(`[A-Z0-9-]{10,}`)

type FeedClient interface {
	Search(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error)
}

type rssFeedClient struct {
	httpClient *http.Client
	baseURL    string
	parser     *gofeed.Parser
	sanitizer  *bluemonday.Policy
}

func NewRSSFeedClient(timeout time.Duration) FeedClient {
	return &rssFeedClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    samFeedURL,
		parser:     gofeed.NewParser(),
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// Search implements FeedClient.
func (c *rssFeedClient) Search(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error) {
	feedURL := c.baseURL + "?q=" + url.QueryEscape(keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected feed status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	return c.ParseFeed(body, keyword, limit), nil
}

// ParseFeed maps a syndication body onto canonical records. Descriptions are
// stripped of markup; an unparseable body yields an empty slice, not an
// error.
func (c *rssFeedClient) ParseFeed(raw []byte, keyword string, limit int) []models.Opportunity {
	feed, err := c.parser.ParseString(string(raw))
	if err != nil {
		log.Printf("   RSS parsing error: %v\n", err)
		return nil
	}

	var opportunities []models.Opportunity
	for _, item := range feed.Items {
		if len(opportunities) >= limit {
			break
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = titleCase(keyword) + " Opportunity"
		}

		noticeID := models.NoticeIDUnknown
		if item.Link != "" {
			if match := feedNoticeIDPattern.FindString(item.Link); match != "" {
				noticeID = match
			}
		}

		description := c.stripMarkup(item.Description)
		if description == "" {
			description = "No description"
		}

		posted := item.Published
		if posted == "" {
			posted = "N/A"
		}

		opportunities = append(opportunities, models.Opportunity{
			Title:            truncateRunes(title, feedTitleLimit),
			NoticeID:         noticeID,
			Description:      truncateRunes(description, feedDescriptionLimit),
			PostedDate:       posted,
			ResponseDeadline: "See SAM.gov",
			Department:       "Federal Government",
			Type:             "Active Opportunity",
			NAICSCode:        "See SAM.gov",
		})
	}

	return opportunities
}

func (c *rssFeedClient) stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
