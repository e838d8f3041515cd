package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
	"github.com/brightsmile/clinic-api/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", 72*time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()

	var stored *entity.User
	users := &mockUserRepo{
		insertFn: func(ctx context.Context, u *entity.User) (*repo.InsertResult, error) {
			stored = u
			return &repo.InsertResult{InsertedID: primitive.NewObjectID()}, nil
		},
	}

	svc := NewAccountService(users, testJWT(), nil, nil, false)
	res, err := svc.Register(ctx, "jane@example.com", "password123")

	assert.NoError(t, err)
	assert.False(t, res.InsertedID.IsZero())
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "password123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		insertFn: func(ctx context.Context, u *entity.User) (*repo.InsertResult, error) {
			return nil, repo.ErrDuplicateEmail
		},
	}
	svc := NewAccountService(users, testJWT(), nil, nil, false)

	_, err := svc.Register(context.Background(), "jane@example.com", "password123")
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()
	hash, _ := helpers.HashPassword("password123")

	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: uid, Email: email, Password: hash}, nil
		},
	}

	jwt := testJWT()
	svc := NewAccountService(users, jwt, nil, nil, false)
	token, err := svc.Login(ctx, "jane@example.com", "password123")
	assert.NoError(t, err)

	claims, err := jwt.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uid.Hex(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := helpers.HashPassword("password123")
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: primitive.NewObjectID(), Email: email, Password: hash}, nil
		},
	}
	svc := NewAccountService(users, testJWT(), nil, nil, false)

	token, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, repo.ErrNotFound
		},
	}
	svc := NewAccountService(users, testJWT(), nil, nil, false)

	token, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}
