package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lagoon/db"
	"lagoon/globals"
	"lagoon/models"
	"lagoon/mq"
	"lagoon/planner"
	"lagoon/rdx"
	"lagoon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var store = NewStore()

// tripPayload is the save/update request body: trip metadata plus the full
// current item set. Updates fully replace the prior items.
type tripPayload struct {
	Trip  models.Trip            `json:"trip"`
	Items []models.ItineraryItem `json:"items"`
}

// validatePayload runs the planner's save-time checks. The boundary rejects
// day values below 1; the in-memory plan itself stays permissive.
func validatePayload(p tripPayload) string {
	plan := planner.NewPlan()
	plan.Details = planner.Details{
		Name:      p.Trip.Name,
		StartDate: p.Trip.StartDate,
		EndDate:   p.Trip.EndDate,
		Travelers: p.Trip.Travelers,
		Budget:    p.Trip.Budget,
	}

	if p.Trip.Name == "" {
		return "Trip name is required"
	}
	if p.Trip.Travelers < 1 {
		return "At least one traveler is required"
	}
	if p.Trip.Budget < 0 {
		return "Budget cannot be negative"
	}
	if msg := plan.ValidateDates(time.Now()); msg != "" {
		return msg
	}
	for _, it := range p.Items {
		if it.Day < 1 {
			return "Item day must be 1 or greater"
		}
		if it.Price < 0 {
			return "Item price cannot be negative"
		}
	}
	return ""
}

// POST /api/trips/trip
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload tripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := validatePayload(payload); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip := payload.Trip
	trip.UserID = userID
	if trip.Tags == nil {
		trip.Tags = []string{}
	}

	saved, err := SaveTrip(ctx, store, trip, payload.Items)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving trip")
		return
	}

	mq.Emit("trip-created", mq.TripEvent{ShortID: saved.ShortID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusCreated, saved)
}

// GET /api/trips/trip/:shortid
// Loads a trip by its public short id, bumps the view counter, and returns
// the items ordered by (day, sort_order). The counter increment is
// fire-and-forget; a lost update is tolerated.
func GetTripByShortID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shortID := ps.ByName("shortid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, shortID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if !trip.IsPublic && trip.UserID != userID && !IsCollaborator(ctx, trip.TripID, userID) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	rdx.IncrTripViews(shortID)

	items, err := store.FindItems(ctx, trip.TripID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip items")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"trip":  trip,
		"items": items,
	})
}

// PUT /api/trips/trip/:shortid
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shortID := ps.ByName("shortid")
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := store.FindTripByShortID(ctx, shortID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if existing.UserID != userID && !isEditor(ctx, existing.TripID, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var payload tripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validatePayload(payload); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	trip := payload.Trip
	trip.TripID = existing.TripID
	trip.ShortID = existing.ShortID
	trip.UserID = existing.UserID

	if err := ReplaceTrip(ctx, store, trip, payload.Items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
		return
	}

	mq.Emit("trip-updated", mq.TripEvent{ShortID: shortID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Trip updated successfully"})
}

// DELETE /api/trips/trip/:shortid
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shortID := ps.ByName("shortid")
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, shortID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if err := store.DeleteItems(ctx, trip.TripID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip items")
		return
	}
	if err := store.DeleteTrip(ctx, trip.TripID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}

	mq.Emit("trip-deleted", mq.TripEvent{ShortID: shortID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Trip deleted successfully"})
}

// GET /api/trips/trips
// Public trips, newest first.
func GetPublicTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)
	filter := bson.M{"is_public": true}
	if opts.Search != "" {
		filter["name"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}

	findOpts := opts.FindOptions().SetSort(bson.D{{Key: "created_at", Value: -1}})
	tripsList, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, filter, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tripsList)
}

// GET /api/trips/mine
func GetMyTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOpts := utils.ParseQueryOptions(r).FindOptions().SetSort(bson.D{{Key: "created_at", Value: -1}})
	tripsList, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tripsList)
}
