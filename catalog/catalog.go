package catalog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"lagoon/db"
	"lagoon/models"
	"lagoon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func parseFilters(r *http.Request) Filters {
	q := r.URL.Query()
	minPrice, _ := strconv.ParseFloat(q.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)
	minRating, _ := strconv.ParseFloat(q.Get("min_rating"), 64)

	return Filters{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		Climate:   q.Get("climate"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MinRating: minRating,
	}
}

// GET /api/islands
func GetIslands(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	islands, err := utils.FindAndDecode[models.Island](ctx, db.IslandsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching islands")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, FilterIslands(islands, parseFilters(r)))
}

// GET /api/islands/:islandid
func GetIsland(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var island models.Island
	err := db.IslandsCollection.FindOne(ctx, bson.M{"islandid": ps.ByName("islandid")}).Decode(&island)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Island not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, island)
}

// GET /api/hotels
func GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if islandID := r.URL.Query().Get("island"); islandID != "" {
		filter["islandid"] = islandID
	}

	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching hotels")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, FilterHotels(hotels, parseFilters(r)))
}

// GET /api/hotels/:hotelid
func GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var hotel models.Hotel
	err := db.HotelsCollection.FindOne(ctx, bson.M{"hotelid": ps.ByName("hotelid")}).Decode(&hotel)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Hotel not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, hotel)
}

// GET /api/events
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if islandID := r.URL.Query().Get("island"); islandID != "" {
		filter["islandid"] = islandID
	}

	events, err := utils.FindAndDecode[models.Event](ctx, db.EventsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching events")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, FilterEvents(events, parseFilters(r)))
}

// GET /api/events/:eventid
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var event models.Event
	err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": ps.ByName("eventid")}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}
