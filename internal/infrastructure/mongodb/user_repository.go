package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	"github.com/brightsmile/clinic-api/internal/domain/repository"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(UsersCollection)}
}

// Insert creates an account document. The unique index on email makes
// duplicate registrations surface as ErrDuplicateEmail.
func (r *UserRepository) Insert(ctx context.Context, u *entity.User) (*repository.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return nil, repository.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return &repository.InsertResult{InsertedID: id}, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
