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
	CustomersCollection  *mongo.Collection
	OrganizersCollection *mongo.Collection
	EventsCollection     *mongo.Collection
	ServicesCollection   *mongo.Collection
	BookingsCollection   *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	CustomersCollection = Client.Database("eventifydb").Collection("customers")
	OrganizersCollection = Client.Database("eventifydb").Collection("organizers")
	EventsCollection = Client.Database("eventifydb").Collection("events")
	ServicesCollection = Client.Database("eventifydb").Collection("services")
	BookingsCollection = Client.Database("eventifydb").Collection("bookings")
}
