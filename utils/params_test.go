package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptions(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/trips/trips", 1, 10},
		{"explicit", "/api/trips/trips?page=3&limit=25", 3, 25},
		{"garbage falls back", "/api/trips/trips?page=zero&limit=-5", 1, 10},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		got := ParseQueryOptions(r)
		if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
			t.Errorf("%s: got page=%d limit=%d, want page=%d limit=%d",
				tt.name, got.Page, got.Limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestFindOptionsSkipLimit(t *testing.T) {
	opts := QueryOptions{Page: 3, Limit: 20}.FindOptions()

	if opts.Skip == nil || *opts.Skip != 40 {
		t.Fatalf("Skip = %v, want 40 for page 3 / limit 20", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 20 {
		t.Fatalf("Limit = %v, want 20", opts.Limit)
	}

	first := QueryOptions{Page: 1, Limit: 10}.FindOptions()
	if first.Skip == nil || *first.Skip != 0 {
		t.Fatalf("Skip = %v for page 1, want 0", first.Skip)
	}
}
