package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID   string             `bson:"externalId"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Phone        string             `bson:"phone"`
	IsAdmin      bool               `bson:"isAdmin"`
	Street       string             `bson:"street"`
	Apartment    string             `bson:"apartment"`
	Zip          string             `bson:"zip"`
	City         string             `bson:"city"`
	Country      string             `bson:"country"`
	DateCreated  time.Time          `bson:"dateCreated"`
}

type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Phone        *string
	IsAdmin      *bool
	Street       *string
	Apartment    *string
	Zip          *string
	City         *string
	Country      *string
}
