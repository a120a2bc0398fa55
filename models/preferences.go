package models

// PreferenceProfile is the traveler questionnaire the recommendation cards
// are ranked against.
type PreferenceProfile struct {
	TravelStyles  []string `json:"travel_styles"` // relaxation/adventure/culture/romance
	Interests     []string `json:"interests"`     // e.g. "Beach activities", "Local cuisine"
	BudgetRange   string   `json:"budget_range"`  // budget/mid/luxury
	GroupSize     int      `json:"group_size"`
	TripDuration  int      `json:"trip_duration"` // days
	Accommodation string   `json:"accommodation"` // resort/boutique/guesthouse
	Dining        []string `json:"dining"`
}

// Recommendation pairs a catalog candidate with its heuristic match score.
type Recommendation struct {
	Kind    string   `json:"kind"` // island/activity/hotel
	RefID   string   `json:"ref_id"`
	Title   string   `json:"title"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}
