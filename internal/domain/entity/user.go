package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document. Password holds the bcrypt hash and is never
// serialized in responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
