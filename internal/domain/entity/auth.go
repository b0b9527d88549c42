package entity

// AuthSession is what a successful register or login hands back to the caller.
type AuthSession struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// Identity is the authenticated caller extracted from a validated access token.
type Identity struct {
	UserID string
	Email  string
	Roles  Roles
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Roles.Contains(RoleAdmin)
}
