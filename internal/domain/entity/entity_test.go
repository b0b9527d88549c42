package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverContainsPassword(t *testing.T) {
	user := NewUser(" Jane@Example.com ", "$2a$10$hash", "Jane", "Doe", "")

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "PasswordHash")
	assert.NotContains(t, string(raw), "$2a$10$hash")
	assert.Equal(t, "jane@example.com", fields["email"])
}

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser("a@b.c", "hash", "A", "B", "+100")

	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.True(t, user.FallDetectionEnabled)
	assert.True(t, user.NotificationsEnabled)
	assert.Empty(t, user.DeviceTokens)
	assert.Equal(t, Roles{RoleUser}, user.Roles())

	user.IsAdmin = true
	assert.True(t, user.Roles().Contains(RoleAdmin))
}

func TestNotificationStatus_IsUnread(t *testing.T) {
	tests := []struct {
		status NotificationStatus
		want   bool
	}{
		{NotificationStatusPending, true},
		{NotificationStatusSent, true},
		{NotificationStatusDelivered, true},
		{NotificationStatusRead, false},
		{NotificationStatusAcknowledged, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsUnread())
		})
	}
}

func TestNotification_IsUnreadIgnoresStatusWhenAcknowledged(t *testing.T) {
	n := &Notification{Status: NotificationStatusSent, IsAcknowledged: true}
	assert.False(t, n.IsUnread())

	n.IsAcknowledged = false
	assert.True(t, n.IsUnread())
}

func TestNotificationType_IsValid(t *testing.T) {
	assert.True(t, NotificationTypeFallDetected.IsValid())
	assert.True(t, NotificationTypeEmergencyContact.IsValid())
	assert.False(t, NotificationType("FALL").IsValid())
	assert.False(t, NotificationStatus("").IsValid())
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "merchant", "admin"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())
}
