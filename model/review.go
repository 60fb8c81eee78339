package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
}
