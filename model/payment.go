package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written once when a checkout completes and never updated.
// MenuItems holds menu ids (hex strings in the request body decode straight
// into ObjectIDs); CartItems keeps the raw hex ids of the cart rows the
// checkout consumed, matching what the client sent.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	MenuItems     []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
	CartItems     []string             `bson:"cartItems" json:"cartItems"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time            `bson:"date,omitempty" json:"date,omitempty"`
}

// OrderStat is one row of the payments-by-category aggregation.
type OrderStat struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Total    float64 `bson:"total" json:"total"`
}
