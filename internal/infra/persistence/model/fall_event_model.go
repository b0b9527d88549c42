package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FallEventModel is the document stored in the 'fallevents' collection.
type FallEventModel struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           primitive.ObjectID `bson:"userId"`
	Confidence       float64            `bson:"confidence"`
	Angle            float64            `bson:"angle"`
	Velocity         float64            `bson:"velocity"`
	Landmarks        bson.M             `bson:"landmarks,omitempty"`
	Location         *LocationModel     `bson:"location,omitempty"`
	Geo              *GeoPointModel     `bson:"geo,omitempty"`
	DeviceInfo       *DeviceInfoModel   `bson:"deviceInfo,omitempty"`
	IsAcknowledged   bool               `bson:"isAcknowledged"`
	AcknowledgedAt   *time.Time         `bson:"acknowledgedAt,omitempty"`
	IsFalseAlarm     bool               `bson:"isFalseAlarm"`
	FalseAlarmReason string             `bson:"falseAlarmReason,omitempty"`
	ImageURLs        []string           `bson:"imageUrls"`
	IsActive         bool               `bson:"isActive"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

// CollectionName returns the collection the model is stored in.
func (FallEventModel) CollectionName() string {
	return "fallevents"
}

// LocationModel keeps the coordinates in the shape clients send them.
type LocationModel struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

// GeoPointModel is a GeoJSON point backing the 2dsphere index. Coordinates are [lon, lat].
type GeoPointModel struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type DeviceInfoModel struct {
	DeviceID   string `bson:"deviceId"`
	DeviceType string `bson:"deviceType"`
	AppVersion string `bson:"appVersion"`
}

// FallStatsModel is the single document produced by the stats aggregation.
type FallStatsModel struct {
	TotalFalls        int     `bson:"totalFalls"`
	AcknowledgedFalls int     `bson:"acknowledgedFalls"`
	FalseAlarms       int     `bson:"falseAlarms"`
	AvgConfidence     float64 `bson:"avgConfidence"`
	MaxConfidence     float64 `bson:"maxConfidence"`
	MinConfidence     float64 `bson:"minConfidence"`
}
