package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultSellerStatus = "3"

type Seller struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Description      string             `bson:"description"`
	RichDescription  string             `bson:"richDescription"`
	Image            string             `bson:"image"`
	Images           []string           `bson:"images"`
	Brand            string             `bson:"brand"`
	Price            float64            `bson:"price"`
	Category         primitive.ObjectID `bson:"category"`
	CategoryDetail   *Category          `bson:"categoryDetail,omitempty"`
	CountInStock     int                `bson:"countInStock"`
	User             primitive.ObjectID `bson:"user"`
	Rating           float64            `bson:"rating"`
	NumReviews       int                `bson:"numReviews"`
	Status           string             `bson:"status"`
	IsFeatured       bool               `bson:"isFeatured"`
	DateCreated      time.Time          `bson:"dateCreated"`
	PaymentAccountID string             `bson:"bKash"`
	VoterID          string             `bson:"VoterId"`
}
