package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateSampleOpportunitiesDeterministic(t *testing.T) {
	first := GenerateSampleOpportunities("gardening", 3)
	second := GenerateSampleOpportunities("gardening", 3)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical arguments")
	}
}

func TestGenerateSampleOpportunitiesKeywordAndIDs(t *testing.T) {
	samples := GenerateSampleOpportunities("gardening", 3)

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	wantIDs := []string{"DEMO-2024-001", "DEMO-2024-002", "DEMO-2024-003"}
	for i, sample := range samples {
		if sample.NoticeID != wantIDs[i] {
			t.Errorf("sample %d: notice id = %q, want %q", i, sample.NoticeID, wantIDs[i])
		}
		if !strings.Contains(sample.Title, "Gardening") {
			t.Errorf("sample %d: title %q does not carry the title-cased keyword", i, sample.Title)
		}
		if !strings.HasPrefix(sample.NoticeID, "DEMO-") {
			t.Errorf("sample %d: notice id %q lacks DEMO- prefix", i, sample.NoticeID)
		}
	}

	if !strings.HasPrefix(samples[0].Title, "Gardening") {
		t.Errorf("first sample title %q should start with the title-cased keyword", samples[0].Title)
	}
}

func TestGenerateSampleOpportunitiesLimit(t *testing.T) {
	cases := []struct {
		limit int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 3},
		{-1, 0},
	}

	for _, tc := range cases {
		got := GenerateSampleOpportunities("security", tc.limit)
		if len(got) != tc.want {
			t.Errorf("limit %d: got %d samples, want %d", tc.limit, len(got), tc.want)
		}
	}
}

func TestGenerateSampleOpportunitiesAllFieldsPopulated(t *testing.T) {
	for i, sample := range GenerateSampleOpportunities("it services", 3) {
		fields := map[string]string{
			"title":             sample.Title,
			"notice_id":         sample.NoticeID,
			"description":       sample.Description,
			"posted_date":       sample.PostedDate,
			"response_deadline": sample.ResponseDeadline,
			"department":        sample.Department,
			"type":              sample.Type,
			"naics_code":        sample.NAICSCode,
		}
		for name, value := range fields {
			if value == "" {
				t.Errorf("sample %d: field %s is empty", i, name)
			}
		}
	}
}
