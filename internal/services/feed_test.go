package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"samscout/contract-agent/internal/models"
)

func TestRSSFeedClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "security services" {
			t.Errorf("q = %q", q)
		}
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	client := newFeedClientForTest(t)
	client.baseURL = server.URL

	got, err := client.Search(context.Background(), "security services", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d opportunities", len(got))
	}
}

func TestRSSFeedClientSearchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newFeedClientForTest(t)
	client.baseURL = server.URL

	if _, err := client.Search(context.Background(), "anything", 3); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}

func newFeedClientForTest(t *testing.T) *rssFeedClient {
	t.Helper()
	client, ok := NewRSSFeedClient(time.Second).(*rssFeedClient)
	if !ok {
		t.Fatal("unexpected feed client type")
	}
	return client
}

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>SAM.gov Opportunities</title>
<item>
	<title>Security Guard Services at Federal Plaza</title>
	<link>https://sam.gov/opp/FA880124R0100-PLAZA/view</link>
	<description>&lt;p&gt;Armed &amp;amp; unarmed &lt;b&gt;security guard&lt;/b&gt; services.&lt;/p&gt;</description>
	<pubDate>Tue, 15 Oct 2024 09:00:00 GMT</pubDate>
</item>
<item>
	<title></title>
	<link>https://sam.gov/feed</link>
	<description></description>
</item>
</channel>
</rss>`

func TestParseFeedMapsItems(t *testing.T) {
	client := newFeedClientForTest(t)

	got := client.ParseFeed([]byte(sampleRSS), "security", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(got))
	}

	first := got[0]
	if first.Title != "Security Guard Services at Federal Plaza" {
		t.Errorf("title = %q", first.Title)
	}
	if first.NoticeID != "FA880124R0100-PLAZA" {
		t.Errorf("notice id from link = %q", first.NoticeID)
	}
	if first.Description != "Armed & unarmed security guard services." {
		t.Errorf("stripped description = %q", first.Description)
	}
	if first.PostedDate != "Tue, 15 Oct 2024 09:00:00 GMT" {
		t.Errorf("posted date = %q", first.PostedDate)
	}
	if first.ResponseDeadline != "See SAM.gov" {
		t.Errorf("deadline sentinel = %q", first.ResponseDeadline)
	}
	if first.Department != "Federal Government" || first.Type != "Active Opportunity" || first.NAICSCode != "See SAM.gov" {
		t.Errorf("unexpected sentinels: %+v", first)
	}
}

func TestParseFeedDefaultsForEmptyItem(t *testing.T) {
	client := newFeedClientForTest(t)

	got := client.ParseFeed([]byte(sampleRSS), "security", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(got))
	}

	second := got[1]
	if second.Title != "Security Opportunity" {
		t.Errorf("default title = %q", second.Title)
	}
	if second.NoticeID != models.NoticeIDUnknown {
		t.Errorf("default notice id = %q", second.NoticeID)
	}
	if second.Description != "No description" {
		t.Errorf("default description = %q", second.Description)
	}
	if second.PostedDate != "N/A" {
		t.Errorf("default posted date = %q", second.PostedDate)
	}
}

func TestParseFeedHonorsLimit(t *testing.T) {
	client := newFeedClientForTest(t)

	got := client.ParseFeed([]byte(sampleRSS), "security", 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
}

func TestParseFeedTruncatesLongFields(t *testing.T) {
	client := newFeedClientForTest(t)
	longTitle := strings.Repeat("T", 300)
	longDesc := strings.Repeat("d", 2000)
	rss := `<?xml version="1.0"?><rss version="2.0"><channel><item><title>` + longTitle +
		`</title><description>` + longDesc + `</description></item></channel></rss>`

	got := client.ParseFeed([]byte(rss), "x", 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(got))
	}
	if n := len([]rune(got[0].Title)); n != feedTitleLimit {
		t.Errorf("title length = %d, want %d", n, feedTitleLimit)
	}
	if n := len([]rune(got[0].Description)); n != feedDescriptionLimit {
		t.Errorf("description length = %d, want %d", n, feedDescriptionLimit)
	}
}

func TestParseFeedMalformed(t *testing.T) {
	client := newFeedClientForTest(t)
	if got := client.ParseFeed([]byte("this is not a feed"), "x", 3); len(got) != 0 {
		t.Fatalf("expected empty result for malformed feed, got %+v", got)
	}
}
