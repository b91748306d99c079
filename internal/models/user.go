package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document of the users collection. Email is stored lowercase.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Phone        *string            `bson:"phone,omitempty"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// FullName is "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
