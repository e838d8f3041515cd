package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	"github.com/brightsmile/clinic-api/internal/domain/repository"
)

type DentistRepository struct {
	col *mongo.Collection
}

func NewDentistRepository(db *mongo.Database) *DentistRepository {
	return &DentistRepository{col: db.Collection(DentistsCollection)}
}

// FindByName does an exact-match lookup on the dentist name field.
// No fuzzy matching, no case normalization.
func (r *DentistRepository) FindByName(ctx context.Context, name string) (*entity.Dentist, error) {
	d := &entity.Dentist{}
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

var _ repository.DentistFinder = (*DentistRepository)(nil)
