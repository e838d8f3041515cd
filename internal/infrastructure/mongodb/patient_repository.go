package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	"github.com/brightsmile/clinic-api/internal/domain/repository"
)

type PatientRepository struct {
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{col: db.Collection(PatientsCollection)}
}

// ListAll returns every patient document in natural store order.
// No pagination: the dataset is expected to stay small.
func (r *PatientRepository) ListAll(ctx context.Context) ([]entity.Patient, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	patients := []entity.Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) Insert(ctx context.Context, p *entity.Patient) (*repository.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return &repository.InsertResult{InsertedID: id}, nil
}

// Replace performs a full field replacement keyed by id. A non-existent id is
// not an error: the result carries a zero matched count.
func (r *PatientRepository) Replace(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*repository.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":                  p.Name,
		"dob":                   p.DOB,
		"gender":                p.Gender,
		"address":               p.Address,
		"appointment_date_time": p.AppointmentDateTime,
		"dentist_id":            p.DentistID,
	}})
	if err != nil {
		return nil, err
	}
	return &repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes one document by id. Deleting a non-existent id succeeds with
// zero effect.
func (r *PatientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

var _ repository.PatientRepository = (*PatientRepository)(nil)
