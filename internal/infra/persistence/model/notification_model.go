package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationModel is the document stored in the 'notifications' collection.
type NotificationModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId"`
	Type           string             `bson:"type"`
	Title          string             `bson:"title"`
	Message        string             `bson:"message"`
	Data           bson.M             `bson:"data"`
	Status         string             `bson:"status"`
	IsEmergency    bool               `bson:"isEmergency"`
	RetryCount     int                `bson:"retryCount"`
	DeviceTokens   []string           `bson:"deviceTokens"`
	SentAt         *time.Time         `bson:"sentAt,omitempty"`
	DeliveredAt    *time.Time         `bson:"deliveredAt,omitempty"`
	ReadAt         *time.Time         `bson:"readAt,omitempty"`
	IsAcknowledged bool               `bson:"isAcknowledged"`
	AcknowledgedAt *time.Time         `bson:"acknowledgedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// CollectionName returns the collection the model is stored in.
func (NotificationModel) CollectionName() string {
	return "notifications"
}
