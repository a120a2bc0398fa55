package suggestions

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"lagoon/db"
	"lagoon/models"
	"lagoon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var scorer = newDefaultScorer()

func newDefaultScorer() *Scorer {
	weights := DefaultWeights()
	if path := os.Getenv("SCORE_WEIGHTS_FILE"); path != "" {
		loaded, err := LoadWeightsFromFile(path)
		if err != nil {
			log.Printf("Falling back to default score weights: %v", err)
		} else {
			weights = loaded
		}
	}
	return NewScorer(weights)
}

// POST /api/suggestions/recommend
// Scores the catalog against the posted preference profile.
func RecommendHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var profile models.PreferenceProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	islands, err := utils.FindAndDecode[models.Island](ctx, db.IslandsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching islands")
		return
	}
	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching hotels")
		return
	}
	events, err := utils.FindAndDecode[models.Event](ctx, db.EventsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching events")
		return
	}

	recs := scorer.Recommend(profile, islands, hotels, events)
	utils.RespondWithJSON(w, http.StatusOK, recs)
}
