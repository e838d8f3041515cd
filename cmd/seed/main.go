package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightsmile/clinic-api/config"
	"github.com/brightsmile/clinic-api/internal/infrastructure/mongodb"
	"github.com/brightsmile/clinic-api/pkg/helpers"
)

// Seeds the dentists collection (read-only at runtime, so it must be
// pre-populated) and one demo account for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDBName)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	dentists := []string{"Dr. Smith", "Dr. Tan", "Dr. Lee"}
	upsert := options.Update().SetUpsert(true)
	for _, name := range dentists {
		res, err := db.Collection(mongodb.DentistsCollection).UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$set": bson.M{"name": name}},
			upsert,
		)
		if err != nil {
			log.Fatalf("failed to seed dentist %q: %v", name, err)
		}
		if res.UpsertedID != nil {
			fmt.Printf("seeded dentist: %s (%v)\n", name, res.UpsertedID)
		} else {
			fmt.Printf("dentist exists: %s\n", name)
		}
	}

	email := "demo@clinic.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	res, err := db.Collection(mongodb.UsersCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": bson.M{"email": email, "password": hash}},
		upsert,
	)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if res.UpsertedID != nil {
		fmt.Printf("seeded user: email=%s password=%s\n", email, password)
	} else {
		fmt.Printf("user exists: email=%s\n", email)
	}
}
