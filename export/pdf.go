package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"lagoon/globals"
	"lagoon/models"
	"lagoon/planner"
	"lagoon/trips"
	"lagoon/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func publicBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "https://lagoon.example.com"
}

// BuildTripPDF renders the trip metadata plus a day-by-day item listing into
// an A4 document with a QR code of the public share URL.
func BuildTripPDF(trip models.Trip, items []models.ItineraryItem, baseURL string) ([]byte, error) {
	plan := planner.NewPlan()
	plan.Details = planner.Details{
		Name:      trip.Name,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		Travelers: trip.Travelers,
		Budget:    trip.Budget,
	}
	plan.Items = items

	shareURL := fmt.Sprintf("%s/trip/%s", baseURL, trip.ShortID)
	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, trip.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if trip.StartDate != "" && trip.EndDate != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Dates: %s to %s", trip.StartDate, trip.EndDate))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Travelers: %d", trip.Travelers))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Estimated cost: %.2f", plan.TotalCost()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Share: %s", shareURL))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 12, 35, 35, false, imageOpts, 0, "")

	for _, day := range plan.VisibleDays() {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d", day))
		pdf.Ln(9)

		dayItems := plan.ItemsForDay(day)
		if len(dayItems) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 6, "Free day")
			pdf.Ln(8)
			continue
		}

		pdf.SetFont("Arial", "", 10)
		for _, it := range dayItems {
			line := it.Title
			if it.Time != "" {
				line = it.Time + "  " + line
			}
			if it.Location != "" {
				line += " - " + it.Location
			}
			if it.Price > 0 {
				line += fmt.Sprintf(" (%.2f)", it.Price)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

var store = trips.NewStore()

// GET /api/trips/trip/:shortid/pdf
// Same visibility rule as the JSON trip endpoint: private trips are only
// served to the owner or a collaborator, everyone else sees a 404.
func PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shortID := ps.ByName("shortid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, shortID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if !trip.IsPublic && trip.UserID != userID && !trips.IsCollaborator(ctx, trip.TripID, userID) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	items, err := store.FindItems(ctx, trip.TripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip items")
		return
	}

	pdfBytes, err := BuildTripPDF(trip, items, publicBaseURL())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+shortID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
