package export

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lagoon/globals"
	"lagoon/models"
	"lagoon/trips"

	"github.com/julienschmidt/httprouter"
)

func TestBuildTripPDF(t *testing.T) {
	trip := models.Trip{
		ShortID:   "Ab12Cd34",
		Name:      "Atoll Adventure",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		Travelers: 2,
	}
	items := []models.ItineraryItem{
		{ItemID: "a", Day: 1, Time: "09:00", Title: "Snorkeling", Location: "Coral Cay", Price: 45},
		{ItemID: "b", Day: 3, Title: "Beach day"},
	}

	pdfBytes, err := BuildTripPDF(trip, items, "https://example.com")
	if err != nil {
		t.Fatalf("BuildTripPDF: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", pdfBytes[:8])
	}
}

// readOnlyStore serves a single trip without touching the database.
type readOnlyStore struct {
	trip models.Trip
}

func (s readOnlyStore) FindTripByShortID(_ context.Context, shortID string) (models.Trip, error) {
	if shortID == s.trip.ShortID {
		return s.trip, nil
	}
	return models.Trip{}, errors.New("not found")
}

func (s readOnlyStore) FindItems(_ context.Context, _ string) ([]models.ItineraryItem, error) {
	return []models.ItineraryItem{}, nil
}

func (readOnlyStore) InsertTrip(_ context.Context, _ models.Trip) error             { return nil }
func (readOnlyStore) InsertItems(_ context.Context, _ []models.ItineraryItem) error { return nil }
func (readOnlyStore) UpdateTripMeta(_ context.Context, _ models.Trip) error         { return nil }
func (readOnlyStore) DeleteTrip(_ context.Context, _ string) error                  { return nil }
func (readOnlyStore) DeleteItems(_ context.Context, _ string) error                 { return nil }

func printTripWith(t *testing.T, s trips.Store, userID string) *httptest.ResponseRecorder {
	t.Helper()

	prev := store
	store = s
	t.Cleanup(func() { store = prev })

	req := httptest.NewRequest(http.MethodGet, "/api/trips/trip/Ab12Cd34/pdf", nil)
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, userID))
	}
	w := httptest.NewRecorder()
	PrintTrip(w, req, httprouter.Params{{Key: "shortid", Value: "Ab12Cd34"}})
	return w
}

func TestPrintTripHidesPrivateTrips(t *testing.T) {
	private := readOnlyStore{trip: models.Trip{
		TripID:   "t1",
		ShortID:  "Ab12Cd34",
		UserID:   "u-owner",
		Name:     "Secret getaway",
		IsPublic: false,
	}}

	if w := printTripWith(t, private, ""); w.Code != http.StatusNotFound {
		t.Fatalf("anonymous request for private trip: status = %d, want 404", w.Code)
	}

	w := printTripWith(t, private, "u-owner")
	if w.Code != http.StatusOK {
		t.Fatalf("owner request: status = %d, want 200", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("owner response is not a PDF")
	}
}

func TestPrintTripServesPublicTrips(t *testing.T) {
	public := readOnlyStore{trip: models.Trip{
		TripID:   "t1",
		ShortID:  "Ab12Cd34",
		UserID:   "u-owner",
		Name:     "Open itinerary",
		IsPublic: true,
	}}

	w := printTripWith(t, public, "")
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous request for public trip: status = %d, want 200", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("response is not a PDF")
	}
}
