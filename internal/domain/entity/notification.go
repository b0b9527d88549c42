package entity

import (
	"slices"
	"time"
)

// NotificationType classifies why a notification was raised.
type NotificationType string

const (
	NotificationTypeFallDetected     NotificationType = "FALL_DETECTED"
	NotificationTypeFallConfirmed    NotificationType = "FALL_CONFIRMED"
	NotificationTypeFallFalseAlarm   NotificationType = "FALL_FALSE_ALARM"
	NotificationTypeSystemAlert      NotificationType = "SYSTEM_ALERT"
	NotificationTypeEmergencyContact NotificationType = "EMERGENCY_CONTACT"
)

// IsValid checks if the NotificationType is a declared value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeFallDetected, NotificationTypeFallConfirmed, NotificationTypeFallFalseAlarm,
		NotificationTypeSystemAlert, NotificationTypeEmergencyContact:
		return true
	default:
		return false
	}
}

// NotificationStatus tracks delivery and user interaction.
//
// PENDING moves to SENT after a delivery attempt succeeds. DELIVERED is reserved for a push
// receipt callback. READ and ACKNOWLEDGED are set by the user and can be reached from any status.
type NotificationStatus string

const (
	NotificationStatusPending      NotificationStatus = "PENDING"
	NotificationStatusSent         NotificationStatus = "SENT"
	NotificationStatusDelivered    NotificationStatus = "DELIVERED"
	NotificationStatusRead         NotificationStatus = "READ"
	NotificationStatusAcknowledged NotificationStatus = "ACKNOWLEDGED"
)

// UnreadStatuses are the statuses counted as unread when the notification is not acknowledged.
var UnreadStatuses = []NotificationStatus{
	NotificationStatusPending,
	NotificationStatusSent,
	NotificationStatusDelivered,
}

// IsValid checks if the NotificationStatus is a declared value.
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusDelivered,
		NotificationStatusRead, NotificationStatusAcknowledged:
		return true
	default:
		return false
	}
}

// IsUnread reports whether a notification in this status counts as unread.
func (s NotificationStatus) IsUnread() bool {
	return slices.Contains(UnreadStatuses, s)
}

// Notification is an alert raised for a user.
type Notification struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	Type           NotificationType   `json:"type"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	Data           map[string]any     `json:"data"`
	Status         NotificationStatus `json:"status"`
	IsEmergency    bool               `json:"isEmergency"`
	RetryCount     int                `json:"retryCount"`
	DeviceTokens   []string           `json:"deviceTokens"`
	SentAt         *time.Time         `json:"sentAt,omitempty"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty"`
	ReadAt         *time.Time         `json:"readAt,omitempty"`
	IsAcknowledged bool               `json:"isAcknowledged"`
	AcknowledgedAt *time.Time         `json:"acknowledgedAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// IsUnread reports whether the notification counts towards the unread badge.
func (n *Notification) IsUnread() bool {
	return !n.IsAcknowledged && n.Status.IsUnread()
}
