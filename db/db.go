package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	TripsCollection        *mongo.Collection
	TripItemsCollection    *mongo.Collection
	CommentsCollection     *mongo.Collection
	CollaboratorCollection *mongo.Collection
	IslandsCollection      *mongo.Collection
	HotelsCollection       *mongo.Collection
	EventsCollection       *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("lagoondb").Collection("users")
	TripsCollection = Client.Database("lagoondb").Collection("trips")
	TripItemsCollection = Client.Database("lagoondb").Collection("tripitems")
	CommentsCollection = Client.Database("lagoondb").Collection("tripcomments")
	CollaboratorCollection = Client.Database("lagoondb").Collection("tripcollaborators")
	IslandsCollection = Client.Database("lagoondb").Collection("islands")
	HotelsCollection = Client.Database("lagoondb").Collection("hotels")
	EventsCollection = Client.Database("lagoondb").Collection("events")
}
