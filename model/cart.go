package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item copied into a user's cart. The owning email comes
// from the client, not the token; the carts listing enforces ownership.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
}
