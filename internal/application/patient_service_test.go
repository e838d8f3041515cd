package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
)

func TestPatientCreateResolvesDentist(t *testing.T) {
	ctx := context.Background()
	dentistID := primitive.NewObjectID()

	var inserted *entity.Patient
	patients := &mockPatientRepo{
		insertFn: func(ctx context.Context, p *entity.Patient) (*repo.InsertResult, error) {
			inserted = p
			return &repo.InsertResult{InsertedID: primitive.NewObjectID()}, nil
		},
	}
	dentists := &mockDentistFinder{
		findByNameFn: func(ctx context.Context, name string) (*entity.Dentist, error) {
			assert.Equal(t, "Dr. Smith", name)
			return &entity.Dentist{ID: dentistID, Name: name}, nil
		},
	}

	svc := NewPatientService(patients, dentists, nil, nil, "")
	res, err := svc.Create(ctx, PatientInput{
		Name:   "Jane Doe",
		DOB:    "1990-01-01",
		Gender: "F",
		Address: entity.Address{
			StreetName:  "Main St",
			BlockNumber: "12",
			UnitNumber:  "05",
			PostalCode:  "123456",
		},
		AppointmentDateTime: "2024-05-01T10:00:00",
		DentistName:         "Dr. Smith",
	})

	assert.NoError(t, err)
	assert.False(t, res.InsertedID.IsZero())
	assert.Equal(t, dentistID, inserted.DentistID)
	assert.Equal(t, "Jane Doe", inserted.Name)
	assert.Equal(t, "123456", inserted.Address.PostalCode)
}

func TestPatientCreateUnknownDentist(t *testing.T) {
	ctx := context.Background()

	insertCalled := false
	patients := &mockPatientRepo{
		insertFn: func(ctx context.Context, p *entity.Patient) (*repo.InsertResult, error) {
			insertCalled = true
			return nil, nil
		},
	}
	dentists := &mockDentistFinder{} // always not found

	svc := NewPatientService(patients, dentists, nil, nil, "")
	_, err := svc.Create(ctx, PatientInput{Name: "Jane Doe", DentistName: "Dr. Unknown"})

	assert.ErrorIs(t, err, ErrDentistNotFound)
	assert.False(t, insertCalled, "no document must be written when the dentist is unknown")
}

func TestPatientUpdateUnknownDentist(t *testing.T) {
	ctx := context.Background()

	replaceCalled := false
	patients := &mockPatientRepo{
		replaceFn: func(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*repo.UpdateResult, error) {
			replaceCalled = true
			return nil, nil
		},
	}
	svc := NewPatientService(patients, &mockDentistFinder{}, nil, nil, "")

	_, err := svc.Update(ctx, primitive.NewObjectID(), PatientInput{DentistName: "Dr. Unknown"})
	assert.ErrorIs(t, err, ErrDentistNotFound)
	assert.False(t, replaceCalled)
}

func TestPatientUpdateMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	dentistID := primitive.NewObjectID()

	patients := &mockPatientRepo{
		replaceFn: func(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*repo.UpdateResult, error) {
			return &repo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
		},
	}
	dentists := &mockDentistFinder{
		findByNameFn: func(ctx context.Context, name string) (*entity.Dentist, error) {
			return &entity.Dentist{ID: dentistID, Name: name}, nil
		},
	}

	svc := NewPatientService(patients, dentists, nil, nil, "")
	res, err := svc.Update(ctx, primitive.NewObjectID(), PatientInput{DentistName: "Dr. Smith"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, int64(0), res.ModifiedCount)
}

func TestPatientDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewPatientService(&mockPatientRepo{}, &mockDentistFinder{}, nil, nil, "")

	id := primitive.NewObjectID()
	assert.NoError(t, svc.Delete(ctx, id))
	assert.NoError(t, svc.Delete(ctx, id))
}

func TestPatientSearchWithoutIndexReturnsEmpty(t *testing.T) {
	svc := NewPatientService(&mockPatientRepo{}, &mockDentistFinder{}, nil, nil, "")
	hits, err := svc.Search(context.Background(), "jane", 10)
	assert.NoError(t, err)
	assert.Empty(t, hits)
}
