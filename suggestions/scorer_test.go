package suggestions

import (
	"fmt"
	"strings"
	"testing"

	"lagoon/models"
)

func TestIslandBeachTropicalRule(t *testing.T) {
	s := NewScorer(DefaultWeights())

	profile := models.PreferenceProfile{Interests: []string{"Beach activities"}}
	island := models.Island{IslandID: "i1", Name: "Coral Cay", Climate: "Tropical"}

	score, reasons := s.ScoreIsland(profile, island)
	if score < 0.8 {
		t.Fatalf("score = %v, want >= 0.8 (base 0.5 + beach/tropical 0.3)", score)
	}

	found := false
	for _, r := range reasons {
		if strings.Contains(strings.ToLower(r), "beach") {
			found = true
		}
	}
	if !found {
		t.Fatalf("reasons = %v, want a beach-related entry", reasons)
	}
}

func TestScoreCappedAtOne(t *testing.T) {
	s := NewScorer(DefaultWeights())

	// Every island rule matches: base 0.5 + 0.3 + 0.2 + 0.2 + 0.2 > 1.
	profile := models.PreferenceProfile{
		TravelStyles: []string{"adventure"},
		Interests:    []string{"Beach activities", "Local cuisine"},
		BudgetRange:  "mid",
	}
	island := models.Island{
		Climate:    "Tropical",
		Activities: []string{"diving"},
		PriceLevel: "mid",
		Tags:       []string{"food"},
	}

	score, _ := s.ScoreIsland(profile, island)
	if score != 1 {
		t.Fatalf("score = %v, want exactly 1 (capped)", score)
	}
}

func TestReasonsTruncatedToThree(t *testing.T) {
	s := NewScorer(DefaultWeights())

	profile := models.PreferenceProfile{
		TravelStyles: []string{"adventure"},
		Interests:    []string{"Beach activities", "Local cuisine"},
		BudgetRange:  "luxury",
	}
	island := models.Island{
		Climate:    "Tropical",
		Activities: []string{"surfing"},
		PriceLevel: "luxury",
		Tags:       []string{"food"},
	}

	_, reasons := s.ScoreIsland(profile, island)
	if len(reasons) > 3 {
		t.Fatalf("len(reasons) = %d, want at most 3", len(reasons))
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	s := NewScorer(DefaultWeights())

	profiles := []models.PreferenceProfile{
		{},
		{TravelStyles: []string{"adventure"}, Interests: []string{"Beach activities"}},
		{BudgetRange: "budget", GroupSize: 2, Dining: []string{"restaurant"}},
	}
	hotels := []models.Hotel{
		{},
		{Category: "resort", PricePerNight: 80, Amenities: []string{"restaurant"}},
	}
	events := []models.Event{
		{},
		{Category: "water-sports", Price: 0, GroupSize: 10},
	}

	for _, p := range profiles {
		for _, h := range hotels {
			if score, _ := s.ScoreHotel(p, h); score < 0 || score > 1 {
				t.Fatalf("hotel score %v out of [0,1]", score)
			}
		}
		for _, e := range events {
			if score, _ := s.ScoreEvent(p, e); score < 0 || score > 1 {
				t.Fatalf("event score %v out of [0,1]", score)
			}
		}
	}
}

func TestRecommendThresholdAndCap(t *testing.T) {
	// Zero every increment and drop the bases under the threshold: nothing
	// should survive the 0.3 cutoff.
	w := Weights{IslandBase: 0.1, ActivityBase: 0.1, HotelBase: 0.1}
	s := NewScorer(w)

	recs := s.Recommend(models.PreferenceProfile{},
		[]models.Island{{IslandID: "i1"}},
		[]models.Hotel{{HotelID: "h1"}},
		[]models.Event{{EventID: "e1"}})
	if len(recs) != 0 {
		t.Fatalf("len(recs) = %d, want 0 below threshold", len(recs))
	}

	// 20 islands over the threshold collapse to the top 12.
	var islands []models.Island
	for i := 0; i < 20; i++ {
		islands = append(islands, models.Island{IslandID: fmt.Sprintf("i%d", i), Climate: "Tropical"})
	}
	s = NewScorer(DefaultWeights())
	recs = s.Recommend(models.PreferenceProfile{Interests: []string{"Beach activities"}}, islands, nil, nil)
	if len(recs) != MaxResults {
		t.Fatalf("len(recs) = %d, want %d", len(recs), MaxResults)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatal("recommendations not sorted descending by score")
		}
	}
}
