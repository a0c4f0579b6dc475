package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"samscout/contract-agent/internal/models"
)

const samAPIURL = "https://api.sam.gov/prod/opportunities/v1/search"

const apiDescriptionLimit = 1500

// browserHeaders mimic a desktop browser; SAM.gov rejects obvious bot
// user agents on some endpoints.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

type SamAPIClient interface {
	Search(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error)
}

type samAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewSamAPIClient(timeout time.Duration) SamAPIClient {
	return &samAPIClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    samAPIURL,
	}
}

// Search implements SamAPIClient.
func (c *samAPIClient) Search(ctx context.Context, keyword string, limit int) ([]models.Opportunity, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("api_key", "null")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build API request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected API status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}

	return ParseAPIResponse(body, limit), nil
}

// ParseAPIResponse maps the opportunities-search JSON body onto canonical
// records. A body without the expected opportunitiesData list falls back to
// a recursive search of the whole document; a malformed body yields an empty
// slice rather than an error.
func ParseAPIResponse(body []byte, limit int) []models.Opportunity {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("   API parsing error: %v\n", err)
		return nil
	}

	if doc, ok := payload.(map[string]any); ok {
		if raw, ok := doc["opportunitiesData"].([]any); ok {
			var opportunities []models.Opportunity
			for _, item := range raw {
				if len(opportunities) >= limit {
					break
				}
				fields, ok := item.(map[string]any)
				if !ok {
					continue
				}
				opportunities = append(opportunities, opportunityFromAPIFields(fields))
			}
			return opportunities
		}
	}

	return ExtractOpportunities(payload, limit)
}

// opportunityListKeys are field names whose list values may hold opportunity
// objects, in any provider response shape.
var opportunityListKeys = []string{"opportunities", "results", "data", "items", "opportunitiesData"}

// ExtractOpportunities walks an arbitrarily nested decoded JSON value looking
// for lists of opportunity-shaped objects. Objects qualify when they sit
// under one of the known list keys and carry a title.
func ExtractOpportunities(doc any, limit int) []models.Opportunity {
	var opportunities []models.Opportunity

	var walk func(node any)
	walk = func(node any) {
		if len(opportunities) >= limit {
			return
		}
		switch value := node.(type) {
		case map[string]any:
			for _, key := range opportunityListKeys {
				list, ok := value[key].([]any)
				if !ok {
					continue
				}
				for _, item := range list {
					if len(opportunities) >= limit {
						return
					}
					fields, ok := item.(map[string]any)
					if !ok {
						continue
					}
					if _, hasTitle := fields["title"]; !hasTitle {
						continue
					}
					opportunities = append(opportunities, opportunityFromGenericFields(fields))
				}
			}
			for key, child := range value {
				if isOpportunityListKey(key) {
					continue
				}
				walk(child)
			}
		case []any:
			for _, child := range value {
				walk(child)
			}
		}
	}
	walk(doc)

	return opportunities
}

func isOpportunityListKey(key string) bool {
	for _, candidate := range opportunityListKeys {
		if key == candidate {
			return true
		}
	}
	return false
}

func opportunityFromAPIFields(fields map[string]any) models.Opportunity {
	return models.Opportunity{
		Title:            stringField(fields, "No title", "title"),
		NoticeID:         stringField(fields, models.NoticeIDUnknown, "noticeId"),
		Description:      truncateRunes(stringField(fields, "No description", "description"), apiDescriptionLimit),
		PostedDate:       stringField(fields, "N/A", "postedDate"),
		ResponseDeadline: stringField(fields, "N/A", "responseDeadLine"),
		Department:       departmentField(fields, "department"),
		Type:             stringField(fields, "N/A", "type"),
		NAICSCode:        stringField(fields, "N/A", "naicsCode"),
	}
}

func opportunityFromGenericFields(fields map[string]any) models.Opportunity {
	return models.Opportunity{
		Title:            stringField(fields, "Untitled", "title"),
		NoticeID:         stringField(fields, models.NoticeIDUnknown, "noticeId", "id"),
		Description:      truncateRunes(stringField(fields, "No description", "description", "summary"), apiDescriptionLimit),
		PostedDate:       stringField(fields, "N/A", "postedDate", "publishDate"),
		ResponseDeadline: stringField(fields, "N/A", "responseDeadLine", "deadline"),
		Department:       departmentField(fields, "department", "agency"),
		Type:             stringField(fields, "N/A", "type"),
		NAICSCode:        stringField(fields, "N/A", "naicsCode"),
	}
}

// stringField returns the first non-empty string value among the given keys.
func stringField(fields map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value
		}
	}
	return fallback
}

// departmentField tolerates both a bare string and an object with a name,
// which is how the SAM API has shipped this field at different times.
func departmentField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		switch value := fields[key].(type) {
		case string:
			if value != "" {
				return value
			}
		case map[string]any:
			if name, ok := value["name"].(string); ok && name != "" {
				return name
			}
		}
	}
	return "N/A"
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
