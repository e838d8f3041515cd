package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
)

// InsertResult reports the identifier generated by the store.
type InsertResult struct {
	InsertedID primitive.ObjectID `json:"inserted_id"`
}

// UpdateResult reports how many documents matched and were modified.
// A zero MatchedCount means the id did not exist; the operation still succeeds.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// PatientRepository defines the interface for patient document operations.
type PatientRepository interface {
	ListAll(ctx context.Context) ([]entity.Patient, error)
	Insert(ctx context.Context, p *entity.Patient) (*InsertResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
