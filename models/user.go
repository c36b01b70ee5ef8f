package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// UserProfile holds optional demographic fields. Each field is independently
// nullable; absence is encoded as null (or an empty interests list).
type UserProfile struct {
	Age       *int     `json:"age" bson:"age"`
	Country   string   `json:"country" bson:"country"`
	Interests []string `json:"interests" bson:"interests"`
	Avatar    *string  `json:"avatar" bson:"avatar"`
}

// User model
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	Profile   UserProfile        `json:"profile" bson:"profile"`
	Status    UserStatus         `json:"status" bson:"status"`
	LastLogin *time.Time         `json:"lastLogin" bson:"lastLogin"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
