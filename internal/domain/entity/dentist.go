package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dentist is read-only from this service's perspective; the collection is
// assumed pre-populated (see cmd/seed).
type Dentist struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}
