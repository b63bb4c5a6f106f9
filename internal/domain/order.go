package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultOrderStatus = "Pending"

type OrderItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Quantity int                `bson:"quantity"`
	Product  primitive.ObjectID `bson:"product"`
}

type Order struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	OrderItems       []primitive.ObjectID `bson:"orderItems"`
	Items            []OrderItem          `bson:"items,omitempty"`
	ShippingAddress1 string               `bson:"shippingAddress1"`
	ShippingAddress2 string               `bson:"shippingAddress2"`
	City             string               `bson:"city"`
	Zip              string               `bson:"zip"`
	Country          string               `bson:"country"`
	Phone            string               `bson:"phone"`
	Status           string               `bson:"status"`
	TotalPrice       float64              `bson:"totalPrice"`
	User             primitive.ObjectID   `bson:"user"`
	UserDetail       *User                `bson:"userDetail,omitempty"`
	DateOrdered      time.Time            `bson:"dateOrdered"`
}
