package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity record. Each user owns exactly one Profile, linked by
// Profile.UserId. Users are never deleted, only deactivated.
type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	LastLogin time.Time          `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
