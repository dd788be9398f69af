package auth

import "github.com/EcoGuardHQ/EcoGuard/app/models"

// Session is the explicit handle for an authenticated session. It is
// created by Login/Register, passed to the report and reward managers, and
// destroyed by Logout. The user projection it carries has no credential
// field. There is no ambient "current user" anywhere in the core.
type Session struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// UserID returns the id of the session's user.
func (s *Session) UserID() uint {
	return s.User.ID
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Session) IsAdmin() bool {
	return s.User.Role == models.ROLE_ADMIN
}
