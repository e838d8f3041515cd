package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/application"
	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
	"github.com/brightsmile/clinic-api/pkg/helpers"
	"github.com/brightsmile/clinic-api/pkg/validation"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

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

type mockDentistFinder struct {
	findByNameFn func(ctx context.Context, name string) (*entity.Dentist, error)
}

func (m *mockDentistFinder) FindByName(ctx context.Context, name string) (*entity.Dentist, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, repo.ErrNotFound
}

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
	return nil, repo.ErrNotFound
}

// knownDentist is a finder that resolves exactly one name.
func knownDentist(name string, id primitive.ObjectID) *mockDentistFinder {
	return &mockDentistFinder{
		findByNameFn: func(ctx context.Context, got string) (*entity.Dentist, error) {
			if got == name {
				return &entity.Dentist{ID: id, Name: name}, nil
			}
			return nil, repo.ErrNotFound
		},
	}
}

func patientTestRouter(patients repo.PatientRepository, dentists repo.DentistFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewPatientService(patients, dentists, nil, nil, "")
	h := NewPatientHandler(svc, testLogger())
	r := gin.New()
	r.GET("/patients", h.List)
	r.GET("/patients/search", h.Search)
	r.POST("/patient", h.Create)
	r.PUT("/patient/:id", h.Update)
	r.DELETE("/patient/:id", h.Delete)
	return r
}

func accountTestRouter(users repo.UserRepository, jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	svc := application.NewAccountService(users, jwt, nil, nil, false)
	h := NewAccountHandler(svc, testLogger())
	r := gin.New()
	r.POST("/user", h.Register)
	r.POST("/login", h.Login)
	return r
}
