package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"lagoon/db"
	"lagoon/globals"
	"lagoon/models"
	"lagoon/rdx"
	"lagoon/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IsCollaborator reports whether the user has any collaborator row on the
// trip. Anonymous users are never collaborators.
func IsCollaborator(ctx context.Context, tripID, userID string) bool {
	if userID == "" {
		return false
	}
	err := db.CollaboratorCollection.FindOne(ctx, bson.M{"trip_id": tripID, "user_id": userID}).Err()
	return err == nil
}

func isEditor(ctx context.Context, tripID, userID string) bool {
	if userID == "" {
		return false
	}
	err := db.CollaboratorCollection.FindOne(ctx, bson.M{"trip_id": tripID, "user_id": userID, "role": "editor"}).Err()
	return err == nil
}

// POST /api/trips/trip/:shortid/comments
func CreateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trip, err := store.FindTripByShortID(ctx, ps.ByName("shortid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !trip.AllowComments {
		utils.RespondWithError(w, http.StatusForbidden, "Comments are disabled for this trip")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(body.Content) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	comment := models.TripComment{
		CommentID: uuid.New().String(),
		TripID:    trip.TripID,
		CreatedBy: userID,
		Content:   body.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.CommentsCollection.InsertOne(ctx, comment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}

	db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": trip.TripID}, bson.M{"$inc": bson.M{"comments_count": 1}})

	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// GET /api/trips/trip/:shortid/comments
func GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, ps.ByName("shortid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	comments, err := utils.FindAndDecode[models.TripComment](ctx, db.CommentsCollection, bson.M{"trip_id": trip.TripID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching comments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// DELETE /api/trips/trip/:shortid/comments/:commentid
func DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var existing models.TripComment
	err := db.CommentsCollection.FindOne(ctx, bson.M{"commentid": ps.ByName("commentid")}).Decode(&existing)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
		return
	}
	if existing.CreatedBy != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.CommentsCollection.DeleteOne(ctx, bson.M{"commentid": existing.CommentID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting comment")
		return
	}
	db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": existing.TripID}, bson.M{"$inc": bson.M{"comments_count": -1}})

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Comment deleted"})
}

// POST /api/trips/trip/:shortid/collaborators
func AddCollaborator(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trip, err := store.FindTripByShortID(ctx, ps.ByName("shortid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Only the owner can add collaborators")
		return
	}
	if !trip.AllowCollaboration {
		utils.RespondWithError(w, http.StatusForbidden, "Collaboration is disabled for this trip")
		return
	}

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.Role != "editor" {
		body.Role = "viewer"
	}

	// one row per (trip, user)
	err = db.CollaboratorCollection.FindOne(ctx, bson.M{"trip_id": trip.TripID, "user_id": body.UserID}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Already a collaborator")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error checking collaborators")
		return
	}

	collab := models.TripCollaborator{
		TripID:    trip.TripID,
		UserID:    body.UserID,
		Role:      body.Role,
		AddedBy:   userID,
		CreatedAt: time.Now(),
	}
	if _, err := db.CollaboratorCollection.InsertOne(ctx, collab); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, collab)
}

// GET /api/trips/trip/:shortid/collaborators
func GetCollaborators(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, ps.ByName("shortid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	collabs, err := utils.FindAndDecode[models.TripCollaborator](ctx, db.CollaboratorCollection, bson.M{"trip_id": trip.TripID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching collaborators")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, collabs)
}

// POST /api/trips/trip/:shortid/like
func LikeTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shortID := ps.ByName("shortid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := store.FindTripByShortID(ctx, shortID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	rdx.IncrTripLikes(shortID, 1)
	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Liked"})
}

// DELETE /api/trips/trip/:shortid/like
func UnlikeTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shortID := ps.ByName("shortid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := store.FindTripByShortID(ctx, shortID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	rdx.IncrTripLikes(shortID, -1)
	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Unliked"})
}
