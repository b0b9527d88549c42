// Package model contains the document shapes stored in MongoDB.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the document stored in the 'users' collection.
type UserModel struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty"`
	Email                string               `bson:"email"`
	Password             string               `bson:"password"`
	FirstName            string               `bson:"firstName"`
	LastName             string               `bson:"lastName"`
	PhoneNumber          string               `bson:"phoneNumber,omitempty"`
	IsActive             bool                 `bson:"isActive"`
	IsAdmin              bool                 `bson:"isAdmin"`
	DeviceTokens         []string             `bson:"deviceTokens"`
	FallDetectionEnabled bool                 `bson:"fallDetectionEnabled"`
	NotificationsEnabled bool                 `bson:"notificationsEnabled"`
	EmergencyContacts    []primitive.ObjectID `bson:"emergencyContacts"`
	CreatedAt            time.Time            `bson:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt"`
}

// CollectionName returns the collection the model is stored in.
func (UserModel) CollectionName() string {
	return "users"
}
