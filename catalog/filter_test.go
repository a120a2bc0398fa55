package catalog

import (
	"testing"

	"lagoon/models"
)

func TestFilterIslands(t *testing.T) {
	islands := []models.Island{
		{IslandID: "i1", Name: "Coral Cay", Climate: "Tropical", Rating: 4.7, Location: "North Atoll"},
		{IslandID: "i2", Name: "Stone Isle", Climate: "Temperate", Rating: 4.1},
		{IslandID: "i3", Name: "Palm Reef", Climate: "Tropical", Rating: 3.2},
	}

	got := FilterIslands(islands, Filters{Climate: "tropical", MinRating: 4.0})
	if len(got) != 1 || got[0].IslandID != "i1" {
		t.Fatalf("FilterIslands = %v, want [i1]", got)
	}

	got = FilterIslands(islands, Filters{Search: "atoll"})
	if len(got) != 1 || got[0].IslandID != "i1" {
		t.Fatalf("search by location = %v, want [i1]", got)
	}

	got = FilterIslands(islands, Filters{})
	if len(got) != 3 {
		t.Fatalf("no filters should pass everything, got %d", len(got))
	}
}

func TestFilterHotelsPriceBand(t *testing.T) {
	hotels := []models.Hotel{
		{HotelID: "h1", Name: "Budget Hut", Category: "guesthouse", PricePerNight: 60, Rating: 4.0},
		{HotelID: "h2", Name: "Lagoon Resort", Category: "resort", PricePerNight: 420, Rating: 4.8},
		{HotelID: "h3", Name: "Mid Stay", Category: "boutique", PricePerNight: 180, Rating: 3.9},
	}

	got := FilterHotels(hotels, Filters{MinPrice: 100, MaxPrice: 300})
	if len(got) != 1 || got[0].HotelID != "h3" {
		t.Fatalf("price band filter = %v, want [h3]", got)
	}

	got = FilterHotels(hotels, Filters{Category: "RESORT"})
	if len(got) != 1 || got[0].HotelID != "h2" {
		t.Fatalf("category filter is case-insensitive, got %v", got)
	}
}

func TestFilterEventsEmptyResultIsNotNil(t *testing.T) {
	got := FilterEvents(nil, Filters{Category: "nightlife"})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}
