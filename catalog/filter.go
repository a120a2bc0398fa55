package catalog

import (
	"strings"

	"lagoon/models"
)

// Filters are the query-string knobs the listing pages expose. Zero values
// mean "no constraint".
type Filters struct {
	Search    string
	Category  string
	Climate   string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

func matchText(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

func matchPrice(price, min, max float64) bool {
	if min > 0 && price < min {
		return false
	}
	if max > 0 && price > max {
		return false
	}
	return true
}

func FilterIslands(islands []models.Island, f Filters) []models.Island {
	out := []models.Island{}
	for _, island := range islands {
		if !matchText(f.Search, island.Name, island.Description, island.Location) {
			continue
		}
		if f.Climate != "" && !strings.EqualFold(island.Climate, f.Climate) {
			continue
		}
		if f.MinRating > 0 && island.Rating < f.MinRating {
			continue
		}
		out = append(out, island)
	}
	return out
}

func FilterHotels(hotels []models.Hotel, f Filters) []models.Hotel {
	out := []models.Hotel{}
	for _, hotel := range hotels {
		if !matchText(f.Search, hotel.Name, hotel.Description, hotel.Location) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(hotel.Category, f.Category) {
			continue
		}
		if !matchPrice(hotel.PricePerNight, f.MinPrice, f.MaxPrice) {
			continue
		}
		if f.MinRating > 0 && hotel.Rating < f.MinRating {
			continue
		}
		out = append(out, hotel)
	}
	return out
}

func FilterEvents(events []models.Event, f Filters) []models.Event {
	out := []models.Event{}
	for _, event := range events {
		if !matchText(f.Search, event.Title, event.Description, event.Location) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(event.Category, f.Category) {
			continue
		}
		if !matchPrice(event.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		if f.MinRating > 0 && event.Rating < f.MinRating {
			continue
		}
		out = append(out, event)
	}
	return out
}
