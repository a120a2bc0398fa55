package suggestions

import (
	"sort"
	"strings"

	"lagoon/models"
)

// MinScore is the discard threshold for recommendation cards.
const MinScore = 0.3

// MaxResults caps the recommendation list.
const MaxResults = 12

const maxReasons = 3

type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// ScoreIsland rates an island against the profile: fixed base score plus a
// fixed increment per matching rule, capped at 1.
func (s *Scorer) ScoreIsland(profile models.PreferenceProfile, island models.Island) (float64, []string) {
	score := s.weights.IslandBase
	var reasons []string

	if hasInterest(profile, "Beach activities") && strings.EqualFold(island.Climate, "Tropical") {
		score += s.weights.IslandBeachTropical
		reasons = append(reasons, "Great beaches in a tropical climate")
	}
	if hasStyle(profile, "adventure") && hasAnyActivity(island, "diving", "hiking", "surfing", "snorkeling") {
		score += s.weights.IslandAdventure
		reasons = append(reasons, "Adventure activities on offer")
	}
	if profile.BudgetRange != "" && strings.EqualFold(profile.BudgetRange, island.PriceLevel) {
		score += s.weights.IslandBudgetMatch
		reasons = append(reasons, "Fits your budget range")
	}
	if hasInterest(profile, "Local cuisine") && hasTag(island.Tags, "food") {
		score += s.weights.IslandCuisine
		reasons = append(reasons, "Known for its local cuisine")
	}

	return cap1(score), truncReasons(reasons)
}

// ScoreEvent rates an event or bookable activity.
func (s *Scorer) ScoreEvent(profile models.PreferenceProfile, event models.Event) (float64, []string) {
	score := s.weights.ActivityBase
	var reasons []string

	if interestMatchesCategory(profile, event.Category) {
		score += s.weights.ActivityInterestMatch
		reasons = append(reasons, "Matches your interests")
	}
	if hasStyle(profile, "adventure") && (strings.EqualFold(event.Category, "water-sports") || strings.EqualFold(event.Category, "nature")) {
		score += s.weights.ActivityAdventure
		reasons = append(reasons, "Good pick for adventurous travelers")
	}
	if event.Price == 0 && strings.EqualFold(profile.BudgetRange, "budget") {
		score += s.weights.ActivityFreeOnBudget
		reasons = append(reasons, "Free to join")
	}
	if event.GroupSize > 0 && profile.GroupSize > 0 && profile.GroupSize <= event.GroupSize {
		score += s.weights.ActivityGroupFit
		reasons = append(reasons, "Suits your group size")
	}

	return cap1(score), truncReasons(reasons)
}

// ScoreHotel rates a hotel.
func (s *Scorer) ScoreHotel(profile models.PreferenceProfile, hotel models.Hotel) (float64, []string) {
	score := s.weights.HotelBase
	var reasons []string

	if profile.Accommodation != "" && strings.EqualFold(profile.Accommodation, hotel.Category) {
		score += s.weights.HotelAccommodation
		reasons = append(reasons, "Your preferred accommodation style")
	}
	if priceFitsBudget(hotel.PricePerNight, profile.BudgetRange) {
		score += s.weights.HotelBudgetMatch
		reasons = append(reasons, "Nightly rate fits your budget")
	}
	if diningMatches(profile.Dining, hotel.Amenities) {
		score += s.weights.HotelDiningMatch
		reasons = append(reasons, "Dining options you asked for")
	}

	return cap1(score), truncReasons(reasons)
}

// Recommend scores the whole catalog, discards anything under MinScore, and
// returns the top results sorted by score descending.
func (s *Scorer) Recommend(profile models.PreferenceProfile, islands []models.Island, hotels []models.Hotel, events []models.Event) []models.Recommendation {
	recs := []models.Recommendation{}

	for _, island := range islands {
		score, reasons := s.ScoreIsland(profile, island)
		if score < MinScore {
			continue
		}
		recs = append(recs, models.Recommendation{
			Kind: "island", RefID: island.IslandID, Title: island.Name,
			Score: score, Reasons: reasons,
		})
	}
	for _, hotel := range hotels {
		score, reasons := s.ScoreHotel(profile, hotel)
		if score < MinScore {
			continue
		}
		recs = append(recs, models.Recommendation{
			Kind: "hotel", RefID: hotel.HotelID, Title: hotel.Name,
			Score: score, Reasons: reasons,
		})
	}
	for _, event := range events {
		score, reasons := s.ScoreEvent(profile, event)
		if score < MinScore {
			continue
		}
		recs = append(recs, models.Recommendation{
			Kind: "activity", RefID: event.EventID, Title: event.Title,
			Score: score, Reasons: reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > MaxResults {
		recs = recs[:MaxResults]
	}
	return recs
}

func cap1(score float64) float64 {
	if score > 1 {
		return 1
	}
	return score
}

func truncReasons(reasons []string) []string {
	if len(reasons) > maxReasons {
		return reasons[:maxReasons]
	}
	return reasons
}

func hasInterest(profile models.PreferenceProfile, interest string) bool {
	for _, in := range profile.Interests {
		if strings.EqualFold(in, interest) {
			return true
		}
	}
	return false
}

func hasStyle(profile models.PreferenceProfile, style string) bool {
	for _, st := range profile.TravelStyles {
		if strings.EqualFold(st, style) {
			return true
		}
	}
	return false
}

func hasAnyActivity(island models.Island, wanted ...string) bool {
	for _, a := range island.Activities {
		for _, w := range wanted {
			if strings.EqualFold(a, w) {
				return true
			}
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// interestMatchesCategory maps questionnaire interests onto event categories.
var interestCategories = map[string][]string{
	"Beach activities": {"water-sports"},
	"Local cuisine":    {"food", "culture"},
	"Nightlife":        {"nightlife"},
	"Nature & wildlife": {"nature"},
	"Culture & history": {"culture"},
}

func interestMatchesCategory(profile models.PreferenceProfile, category string) bool {
	for _, in := range profile.Interests {
		for key, cats := range interestCategories {
			if !strings.EqualFold(in, key) {
				continue
			}
			for _, c := range cats {
				if strings.EqualFold(c, category) {
					return true
				}
			}
		}
	}
	return false
}

func priceFitsBudget(pricePerNight float64, budgetRange string) bool {
	switch strings.ToLower(budgetRange) {
	case "budget":
		return pricePerNight <= 100
	case "mid":
		return pricePerNight > 100 && pricePerNight <= 300
	case "luxury":
		return pricePerNight > 300
	}
	return false
}

func diningMatches(dining []string, amenities []string) bool {
	for _, d := range dining {
		for _, a := range amenities {
			if strings.EqualFold(d, a) {
				return true
			}
		}
	}
	return false
}
