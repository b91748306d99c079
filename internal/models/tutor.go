package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tutor is a document of the tutors collection, written by the import tool.
type Tutor struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FirstName  string             `bson:"firstName"`
	LastName   string             `bson:"lastName"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone,omitempty"`
	Categories []string           `bson:"categories"`
	Bio        string             `bson:"bio,omitempty"`
	HourlyRate float64            `bson:"hourlyRate,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty"`
}

const (
	UsersCollection  = "users"
	TutorsCollection = "tutors"
)
