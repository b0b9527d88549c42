package entity

import "time"

// FallEvent is a fall reported by an external sensing client.
type FallEvent struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`                     // Weak reference to the monitored user.
	Confidence       float64        `json:"confidence"`                 // Model confidence in [0, 1].
	Angle            float64        `json:"angle"`                      // Body angle in degrees.
	Velocity         float64        `json:"velocity"`                   // Fall velocity in m/s.
	Landmarks        map[string]any `json:"landmarks,omitempty"`        // Pose landmarks as sent by the client.
	Location         *GeoLocation   `json:"location,omitempty"`         // Where the fall happened, if known.
	DeviceInfo       *DeviceInfo    `json:"deviceInfo,omitempty"`       // The reporting device.
	IsAcknowledged   bool           `json:"isAcknowledged"`             // Set once a person reviewed the event.
	AcknowledgedAt   *time.Time     `json:"acknowledgedAt,omitempty"`   // When the event was reviewed.
	IsFalseAlarm     bool           `json:"isFalseAlarm"`               // Reviewer classified the event as a false alarm.
	FalseAlarmReason string         `json:"falseAlarmReason,omitempty"` // Optional explanation for the false alarm.
	ImageURLs        []string       `json:"imageUrls"`                  // Snapshot URLs, not filled by ingestion.
	IsActive         bool           `json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// GeoLocation is a WGS84 coordinate.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeviceInfo identifies the client that reported a fall.
type DeviceInfo struct {
	DeviceID   string `json:"deviceId"`
	DeviceType string `json:"deviceType"`
	AppVersion string `json:"appVersion"`
}

// FallAcknowledgement is the reviewer's verdict on a fall event.
type FallAcknowledgement struct {
	IsFalseAlarm     bool
	FalseAlarmReason string
	AcknowledgedAt   time.Time
}

// FallStats summarizes the fall events of one user over a time window.
type FallStats struct {
	TotalFalls        int     `json:"totalFalls"`
	AcknowledgedFalls int     `json:"acknowledgedFalls"`
	FalseAlarms       int     `json:"falseAlarms"`
	AvgConfidence     float64 `json:"avgConfidence"`
	MaxConfidence     float64 `json:"maxConfidence"`
	MinConfidence     float64 `json:"minConfidence"`
}
