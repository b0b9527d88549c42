// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"
)

// User is the account of a monitored person. It is the root entity that fall events
// and notifications refer to by ID.
type User struct {
	ID                   string    `json:"id"`                    // Hex encoded document ID.
	Email                string    `json:"email"`                 // Unique login identifier, stored lower-cased.
	PasswordHash         string    `json:"-"`                     // bcrypt hash, never serialized.
	FirstName            string    `json:"firstName"`             // Given name.
	LastName             string    `json:"lastName"`              // Family name.
	PhoneNumber          string    `json:"phoneNumber,omitempty"` // Optional contact number.
	IsActive             bool      `json:"isActive"`              // Inactive accounts cannot log in.
	IsAdmin              bool      `json:"isAdmin"`               // Grants access to administrative routes.
	DeviceTokens         []string  `json:"deviceTokens"`          // Push tokens of the user's devices.
	FallDetectionEnabled bool      `json:"fallDetectionEnabled"`  // Whether the sensing client should report falls.
	NotificationsEnabled bool      `json:"notificationsEnabled"`  // Whether the user wants alerts.
	EmergencyContacts    []string  `json:"emergencyContacts"`     // IDs of other users to alert.
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewUser builds a user with the defaults applied at registration.
func NewUser(email, passwordHash, firstName, lastName, phoneNumber string) *User {
	return &User{
		Email:                NormalizeEmail(email),
		PasswordHash:         passwordHash,
		FirstName:            firstName,
		LastName:             lastName,
		PhoneNumber:          phoneNumber,
		IsActive:             true,
		DeviceTokens:         []string{},
		FallDetectionEnabled: true,
		NotificationsEnabled: true,
		EmergencyContacts:    []string{},
	}
}

// NormalizeEmail returns the canonical form used for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Roles derives the authorization roles carried in the access token.
func (u *User) Roles() Roles {
	if u.IsAdmin {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}

// HasDeviceToken reports whether the token is already registered.
func (u *User) HasDeviceToken(token string) bool {
	return slices.Contains(u.DeviceTokens, token)
}

// UserUpdate is a partial update of a user's profile. Nil fields are left untouched.
type UserUpdate struct {
	FirstName            *string
	LastName             *string
	PhoneNumber          *string
	PasswordHash         *string
	FallDetectionEnabled *bool
	NotificationsEnabled *bool
	EmergencyContacts    []string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil &&
		u.PasswordHash == nil && u.FallDetectionEnabled == nil &&
		u.NotificationsEnabled == nil && u.EmergencyContacts == nil
}
