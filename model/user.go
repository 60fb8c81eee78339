package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User records are created on first login, keyed by email. The email is the
// identity carried in auth tokens; "admin" is the only privileged role.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
