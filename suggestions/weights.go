package suggestions

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights holds every base score and rule increment the scorer uses, kept as
// configuration data so the exact scoring behavior is reproducible without
// re-deriving the rules from UI code.
type Weights struct {
	IslandBase          float64 `json:"island_base"`
	IslandBeachTropical float64 `json:"island_beach_tropical"`
	IslandAdventure     float64 `json:"island_adventure"`
	IslandBudgetMatch   float64 `json:"island_budget_match"`
	IslandCuisine       float64 `json:"island_cuisine"`

	ActivityBase          float64 `json:"activity_base"`
	ActivityInterestMatch float64 `json:"activity_interest_match"`
	ActivityAdventure     float64 `json:"activity_adventure"`
	ActivityFreeOnBudget  float64 `json:"activity_free_on_budget"`
	ActivityGroupFit      float64 `json:"activity_group_fit"`

	HotelBase          float64 `json:"hotel_base"`
	HotelAccommodation float64 `json:"hotel_accommodation"`
	HotelBudgetMatch   float64 `json:"hotel_budget_match"`
	HotelDiningMatch   float64 `json:"hotel_dining_match"`
}

// DefaultWeights returns the shipped scoring table.
func DefaultWeights() Weights {
	return Weights{
		IslandBase:          0.5,
		IslandBeachTropical: 0.3,
		IslandAdventure:     0.2,
		IslandBudgetMatch:   0.2,
		IslandCuisine:       0.2,

		ActivityBase:          0.45,
		ActivityInterestMatch: 0.3,
		ActivityAdventure:     0.25,
		ActivityFreeOnBudget:  0.2,
		ActivityGroupFit:      0.2,

		HotelBase:          0.4,
		HotelAccommodation: 0.4,
		HotelBudgetMatch:   0.25,
		HotelDiningMatch:   0.2,
	}
}

// LoadWeightsFromFile loads the table from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
