package services

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"samscout/contract-agent/internal/models"
)

const (
	scrapeTitleLimit       = 250
	scrapeDescriptionLimit = 2000
	minTitleLength         = 15
	minContainerTextLength = 100
)

// SAM.gov rebuilds its frontend often, so candidate containers are matched by
// layered patterns rather than exact selectors.
var (
	testIDPattern      = regexp.MustCompile(`(?i)search-result|opportunity|contract`)
	classPattern       = regexp.MustCompile(`(?i)search-result|opportunity-card|contract-item`)
	anchorHrefPattern  = regexp.MustCompile(`(?i)/opp/|/opportunity/|contract`)
	titleAnchorPattern = regexp.MustCompile(`(?i)/opp/|opportunity`)
	noticeIDPattern    = regexp.MustCompile(`[A-Z0-9]{5,}[-_]?[A-Z0-9]*`)
	datePattern        = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|[A-Z][a-z]{2}\s+\d{1,2},?\s+\d{4})`)
	inlineJSONPattern  = regexp.MustCompile(`\{[^{}]*"title"[^{}]*\}`)
)

// skipTerms flag navigation and footer chrome that otherwise looks like a
// result container.
var skipTerms = []string{"privacy", "terms of use", "sitemap", "help guide", "all domains", "sign in"}

// genericTitles are page furniture labels that never name a real listing.
var genericTitles = map[string]bool{
	"all domains": true,
	"help guide":  true,
	"search":      true,
	"filter":      true,
}

var noticeIDHints = []string{"notice id", "solicitation", "number", "award"}

var departmentHints = []string{"department", "agency", "office of"}

// HTMLExtractor turns rendered search-page markup into opportunity records.
// The heuristics inside are coupled to SAM.gov's presentation; keeping them
// behind this interface lets the scraper swap them out when the site changes.
type HTMLExtractor interface {
	Extract(markup, keyword string, limit int) []models.Opportunity
}

type heuristicExtractor struct{}

func NewHeuristicExtractor() HTMLExtractor {
	return &heuristicExtractor{}
}

// Extract implements HTMLExtractor.
func (e *heuristicExtractor) Extract(markup, keyword string, limit int) []models.Opportunity {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Printf("   Failed to parse rendered markup: %v\n", err)
		return nil
	}

	probeScriptJSON(doc)

	containers := findCandidateContainers(doc, limit)
	log.Printf("   Found %d potential opportunity containers\n", len(containers))

	var opportunities []models.Opportunity
	for _, container := range containers {
		opportunity, ok := parseContainer(container, keyword)
		if !ok {
			continue
		}
		opportunities = append(opportunities, opportunity)
		log.Printf("   ✓ Extracted: %s\n", truncateRunes(opportunity.Title, 60))
		if len(opportunities) >= limit {
			break
		}
	}
	return opportunities
}

// probeScriptJSON looks for small inline JSON objects inside script tags that
// mention opportunities. Log-only: SAM.gov has occasionally embedded listing
// data this way and knowing it is present helps debug scrape quality.
func probeScriptJSON(doc *goquery.Document) {
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()
		if !strings.Contains(strings.ToLower(text), "opportunity") {
			return true
		}
		if match := inlineJSONPattern.FindString(text); match != "" {
			var obj map[string]any
			if err := json.Unmarshal([]byte(match), &obj); err == nil {
				if _, ok := obj["title"]; ok {
					log.Println("   Found JSON data in script tag")
					return false
				}
			}
		}
		return true
	})
}

// findCandidateContainers applies the layered fallback: test-id attributes,
// then class names, then parents of opportunity-looking links. The result is
// capped at 3x the requested limit to bound parsing work.
func findCandidateContainers(doc *goquery.Document, limit int) []*goquery.Selection {
	var containers []*goquery.Selection

	doc.Find("div,article,section").Each(func(_ int, s *goquery.Selection) {
		if testID, ok := s.Attr("data-testid"); ok && testIDPattern.MatchString(testID) {
			containers = append(containers, s)
		}
	})

	if len(containers) == 0 {
		doc.Find("div").Each(func(_ int, s *goquery.Selection) {
			if class, ok := s.Attr("class"); ok && classPattern.MatchString(class) {
				containers = append(containers, s)
			}
		})
	}

	if len(containers) == 0 {
		seen := make(map[*html.Node]bool)
		links := doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			return anchorHrefPattern.MatchString(href)
		})
		log.Printf("   Found %d contract-related links\n", links.Length())
		links.EachWithBreak(func(_ int, link *goquery.Selection) bool {
			parent := link.ParentsFiltered("div,article,section").First()
			if parent.Length() == 0 {
				return true
			}
			node := parent.Nodes[0]
			if !seen[node] {
				seen[node] = true
				containers = append(containers, parent)
			}
			return len(containers) < limit*3
		})
	}

	if len(containers) > limit*3 {
		containers = containers[:limit*3]
	}
	return containers
}

// parseContainer derives one record from a candidate block, or reports false
// when the block fails the noise and title filters.
func parseContainer(container *goquery.Selection, keyword string) (models.Opportunity, bool) {
	lines := textLines(container)
	fullText := strings.Join(lines, " ")
	lowerText := strings.ToLower(fullText)

	// Navigation and footer blocks are short and full of chrome terms.
	if utf8.RuneCountInString(fullText) < minContainerTextLength {
		for _, term := range skipTerms {
			if strings.Contains(lowerText, term) {
				return models.Opportunity{}, false
			}
		}
	}

	title := extractTitle(container)
	if title == "" || utf8.RuneCountInString(title) < minTitleLength {
		return models.Opportunity{}, false
	}
	if genericTitles[strings.ToLower(title)] {
		return models.Opportunity{}, false
	}

	opportunity := models.Opportunity{
		Title:            truncateRunes(title, scrapeTitleLimit),
		NoticeID:         extractNoticeID(lines),
		Description:      truncateRunes(extractDescription(lines, title, keyword), scrapeDescriptionLimit),
		Department:       extractDepartment(lines),
		Type:             "Active Opportunity",
		NAICSCode:        "See SAM.gov for NAICS codes",
		PostedDate:       "Recently posted",
		ResponseDeadline: "See SAM.gov for details",
	}

	posted, deadline := extractDates(lines)
	if posted != "" {
		opportunity.PostedDate = posted
	}
	if deadline != "" {
		opportunity.ResponseDeadline = deadline
	}

	return opportunity, true
}

func extractTitle(container *goquery.Selection) string {
	heading := container.Find("h1,h2,h3,h4,h5").First()
	if heading.Length() > 0 {
		if title := strings.TrimSpace(heading.Text()); title != "" {
			return title
		}
	}

	link := container.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return titleAnchorPattern.MatchString(href)
	}).First()
	if link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return ""
}

func extractNoticeID(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, hint := range noticeIDHints {
			if !strings.Contains(lower, hint) {
				continue
			}
			if match := noticeIDPattern.FindString(line); match != "" {
				return match
			}
		}
	}
	return models.NoticeIDUnknown
}

func extractDescription(lines []string, title, keyword string) string {
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 50 && line != title {
			return line
		}
	}
	if len(lines) > 1 {
		end := len(lines)
		if end > 4 {
			end = 4
		}
		return strings.Join(lines[1:end], " ")
	}
	return fmt.Sprintf("Federal contract opportunity for %s", keyword)
}

func extractDates(lines []string) (posted, deadline string) {
	for _, line := range lines {
		match := datePattern.FindString(line)
		if match == "" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "post") || strings.Contains(lower, "publish"):
			posted = match
		case strings.Contains(lower, "dead") || strings.Contains(lower, "due") || strings.Contains(lower, "response"):
			deadline = match
		}
	}
	return posted, deadline
}

func extractDepartment(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, hint := range departmentHints {
			if strings.Contains(lower, hint) && utf8.RuneCountInString(line) < 100 {
				return line
			}
		}
	}
	return "Federal Government"
}

// textLines collects the trimmed text nodes of a selection in document
// order, one line per node, mirroring how the rendered page separates its
// fields visually.
func textLines(s *goquery.Selection) []string {
	var lines []string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range s.Nodes {
		walk(node)
	}
	return lines
}
