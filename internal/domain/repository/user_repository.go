package repository

import (
	"context"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
)

// UserRepository defines the interface for account document operations.
// Accounts are created and read; this service never updates or deletes them.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) (*InsertResult, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
