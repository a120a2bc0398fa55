package trips

import (
	"context"
	"errors"
	"testing"

	"lagoon/models"
)

// fakeStore records writes and can be told to fail the item insert.
type fakeStore struct {
	trips        map[string]models.Trip
	items        map[string][]models.ItineraryItem
	failItems    bool
	deletedTrips []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips: map[string]models.Trip{},
		items: map[string][]models.ItineraryItem{},
	}
}

func (f *fakeStore) InsertTrip(_ context.Context, trip models.Trip) error {
	f.trips[trip.TripID] = trip
	return nil
}

func (f *fakeStore) InsertItems(_ context.Context, items []models.ItineraryItem) error {
	if f.failItems {
		return errors.New("item insert failed")
	}
	for _, it := range items {
		f.items[it.TripID] = append(f.items[it.TripID], it)
	}
	return nil
}

func (f *fakeStore) UpdateTripMeta(_ context.Context, trip models.Trip) error {
	existing, ok := f.trips[trip.TripID]
	if !ok {
		return errors.New("trip not found")
	}
	trip.ShortID = existing.ShortID
	f.trips[trip.TripID] = trip
	return nil
}

func (f *fakeStore) DeleteTrip(_ context.Context, tripID string) error {
	delete(f.trips, tripID)
	f.deletedTrips = append(f.deletedTrips, tripID)
	return nil
}

func (f *fakeStore) DeleteItems(_ context.Context, tripID string) error {
	delete(f.items, tripID)
	return nil
}

func (f *fakeStore) FindTripByShortID(_ context.Context, shortID string) (models.Trip, error) {
	for _, t := range f.trips {
		if t.ShortID == shortID {
			return t, nil
		}
	}
	return models.Trip{}, errors.New("not found")
}

func (f *fakeStore) FindItems(_ context.Context, tripID string) ([]models.ItineraryItem, error) {
	return f.items[tripID], nil
}

func TestSaveTripAssignsIDs(t *testing.T) {
	fs := newFakeStore()

	trip := models.Trip{Name: "Island hop", Travelers: 2}
	items := []models.ItineraryItem{
		{ExternalID: "island-1", Type: "island", Day: 1},
		{ExternalID: "hotel-9", Type: "hotel", Day: 1, Price: 150},
	}

	saved, err := SaveTrip(context.Background(), fs, trip, items)
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}
	if len(saved.ShortID) != 8 {
		t.Fatalf("ShortID = %q, want 8 characters", saved.ShortID)
	}
	if saved.TripID == "" {
		t.Fatal("TripID not assigned")
	}

	got := fs.items[saved.TripID]
	if len(got) != 2 {
		t.Fatalf("stored %d items, want 2", len(got))
	}
	for i, it := range got {
		if it.TripID != saved.TripID {
			t.Fatalf("item %d not stamped with trip id", i)
		}
		if it.ItemID == "" {
			t.Fatalf("item %d missing generated id", i)
		}
		if it.SortOrder != i {
			t.Fatalf("item %d sort order = %d, want %d", i, it.SortOrder, i)
		}
	}
}

func TestSaveTripCompensatesOnItemFailure(t *testing.T) {
	fs := newFakeStore()
	fs.failItems = true

	_, err := SaveTrip(context.Background(), fs, models.Trip{Name: "Doomed", Travelers: 1},
		[]models.ItineraryItem{{ExternalID: "x", Day: 1}})
	if err == nil {
		t.Fatal("expected SaveTrip to fail when item insert fails")
	}

	if len(fs.trips) != 0 {
		t.Fatalf("trip row survived a failed item insert: %v", fs.trips)
	}
	if len(fs.deletedTrips) != 1 {
		t.Fatalf("expected exactly one compensating delete, got %d", len(fs.deletedTrips))
	}
}

func TestReplaceTripReplacesItemSet(t *testing.T) {
	fs := newFakeStore()

	saved, err := SaveTrip(context.Background(), fs, models.Trip{Name: "Hop", Travelers: 1},
		[]models.ItineraryItem{
			{ExternalID: "a", Day: 1},
			{ExternalID: "b", Day: 2},
		})
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	saved.Name = "Hop v2"
	err = ReplaceTrip(context.Background(), fs, saved, []models.ItineraryItem{
		{ExternalID: "c", Day: 1},
	})
	if err != nil {
		t.Fatalf("ReplaceTrip: %v", err)
	}

	got := fs.items[saved.TripID]
	if len(got) != 1 || got[0].ExternalID != "c" {
		t.Fatalf("items after replace = %v, want just the new set", got)
	}
	if fs.trips[saved.TripID].Name != "Hop v2" {
		t.Fatalf("trip meta not updated: %+v", fs.trips[saved.TripID])
	}
}
