package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is referenced by identity only: the profile core touches posts solely
// when cascading an account deletion.
type Post struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
