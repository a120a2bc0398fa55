package trips

import (
	"context"
	"log"
	"time"

	"lagoon/db"
	"lagoon/models"
	"lagoon/planner"
	"lagoon/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the narrow persistence surface the save/update flows run against.
// The production implementation is Mongo-backed; tests inject failures.
type Store interface {
	InsertTrip(ctx context.Context, trip models.Trip) error
	InsertItems(ctx context.Context, items []models.ItineraryItem) error
	UpdateTripMeta(ctx context.Context, trip models.Trip) error
	DeleteTrip(ctx context.Context, tripID string) error
	DeleteItems(ctx context.Context, tripID string) error
	FindTripByShortID(ctx context.Context, shortID string) (models.Trip, error)
	FindItems(ctx context.Context, tripID string) ([]models.ItineraryItem, error)
}

type mongoStore struct{}

func NewStore() Store {
	return mongoStore{}
}

func (mongoStore) InsertTrip(ctx context.Context, trip models.Trip) error {
	_, err := db.TripsCollection.InsertOne(ctx, trip)
	return err
}

func (mongoStore) InsertItems(ctx context.Context, items []models.ItineraryItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		docs = append(docs, it)
	}
	_, err := db.TripItemsCollection.InsertMany(ctx, docs)
	return err
}

func (mongoStore) UpdateTripMeta(ctx context.Context, trip models.Trip) error {
	update := bson.M{"$set": bson.M{
		"name":                trip.Name,
		"start_date":          trip.StartDate,
		"end_date":            trip.EndDate,
		"travelers":           trip.Travelers,
		"budget":              trip.Budget,
		"is_public":           trip.IsPublic,
		"allow_comments":      trip.AllowComments,
		"allow_collaboration": trip.AllowCollaboration,
		"tags":                trip.Tags,
		"updated_at":          trip.UpdatedAt,
	}}
	_, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": trip.TripID}, update)
	return err
}

func (mongoStore) DeleteTrip(ctx context.Context, tripID string) error {
	_, err := db.TripsCollection.DeleteOne(ctx, bson.M{"tripid": tripID})
	return err
}

func (mongoStore) DeleteItems(ctx context.Context, tripID string) error {
	_, err := db.TripItemsCollection.DeleteMany(ctx, bson.M{"trip_id": tripID})
	return err
}

func (mongoStore) FindTripByShortID(ctx context.Context, shortID string) (models.Trip, error) {
	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"short_id": shortID}).Decode(&trip)
	return trip, err
}

func (mongoStore) FindItems(ctx context.Context, tripID string) ([]models.ItineraryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "sort_order", Value: 1}})
	return utils.FindAndDecode[models.ItineraryItem](ctx, db.TripItemsCollection, bson.M{"trip_id": tripID}, opts)
}

// SaveTrip inserts the trip row, then bulk-inserts its items. There is no
// transaction across the two writes: if the item insert fails, the trip row
// is deleted again so no orphaned metadata survives. A concurrent reader can
// still observe the trip-without-items state in between.
func SaveTrip(ctx context.Context, store Store, trip models.Trip, items []models.ItineraryItem) (models.Trip, error) {
	trip.TripID = "t" + utils.GenerateRandomString(13)
	trip.ShortID = utils.GenerateShortID()
	trip.CreatedAt = time.Now().UTC()
	trip.UpdatedAt = trip.CreatedAt

	if err := store.InsertTrip(ctx, trip); err != nil {
		return models.Trip{}, err
	}

	stamped := stampItems(trip.TripID, items)
	if err := store.InsertItems(ctx, stamped); err != nil {
		if derr := store.DeleteTrip(ctx, trip.TripID); derr != nil {
			log.Printf("Failed to roll back trip %s after item insert error: %v", trip.TripID, derr)
		}
		return models.Trip{}, err
	}

	return trip, nil
}

// ReplaceTrip updates the trip row, then fully replaces its item set
// (delete-all-then-reinsert, no diffing).
func ReplaceTrip(ctx context.Context, store Store, trip models.Trip, items []models.ItineraryItem) error {
	trip.UpdatedAt = time.Now().UTC()
	if err := store.UpdateTripMeta(ctx, trip); err != nil {
		return err
	}
	if err := store.DeleteItems(ctx, trip.TripID); err != nil {
		return err
	}
	return store.InsertItems(ctx, stampItems(trip.TripID, items))
}

// stampItems ties items to their owning trip and fills in ids and sort order
// where the client left them empty.
func stampItems(tripID string, items []models.ItineraryItem) []models.ItineraryItem {
	out := make([]models.ItineraryItem, len(items))
	for i, it := range items {
		it.TripID = tripID
		if it.ItemID == "" {
			it.ItemID = planner.NewItemID(it.ExternalID)
		}
		it.SortOrder = i
		out[i] = it
	}
	return out
}
