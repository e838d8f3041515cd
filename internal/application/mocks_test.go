package application

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
)

// Function-field mocks so each test only stubs what it needs.

type mockPatientRepo struct {
	listAllFn func(ctx context.Context) ([]entity.Patient, error)
	insertFn  func(ctx context.Context, p *entity.Patient) (*repo.InsertResult, error)
	replaceFn func(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*repo.UpdateResult, error)
	deleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockPatientRepo) ListAll(ctx context.Context) ([]entity.Patient, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []entity.Patient{}, nil
}

func (m *mockPatientRepo) Insert(ctx context.Context, p *entity.Patient) (*repo.InsertResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, p)
	}
	return &repo.InsertResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockPatientRepo) Replace(ctx context.Context, id primitive.ObjectID, p *entity.Patient) (*repo.UpdateResult, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, p)
	}
	return &repo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockPatientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

var _ repo.PatientRepository = (*mockPatientRepo)(nil)

type mockDentistFinder struct {
	findByNameFn func(ctx context.Context, name string) (*entity.Dentist, error)
}

func (m *mockDentistFinder) FindByName(ctx context.Context, name string) (*entity.Dentist, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, repo.ErrNotFound
}

var _ repo.DentistFinder = (*mockDentistFinder)(nil)

type mockUserRepo struct {
	insertFn      func(ctx context.Context, u *entity.User) (*repo.InsertResult, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepo) Insert(ctx context.Context, u *entity.User) (*repo.InsertResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, u)
	}
	return &repo.InsertResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, errors.New("not stubbed")
}

var _ repo.UserRepository = (*mockUserRepo)(nil)
