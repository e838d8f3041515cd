package repository

import (
	"context"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
)

// DentistFinder is a read-only lookup capability; no write routes exist for
// dentists in this service.
type DentistFinder interface {
	FindByName(ctx context.Context, name string) (*entity.Dentist, error)
}
