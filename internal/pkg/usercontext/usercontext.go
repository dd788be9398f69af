package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
)

// GetSession retrieves the authenticated session for the current request,
// or nil for anonymous requests. The middleware rebuilds it from the
// cookie session before any handler runs.
func GetSession(c *fiber.Ctx) *auth.Session {
	if v := c.Locals(KeySession); v != nil {
		if sess, ok := v.(*auth.Session); ok {
			return sess
		}
	}
	return nil
}

// IsLoggedIn checks if the current request carries an authenticated session
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetSession(c) != nil
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	sess := GetSession(c)
	return sess != nil && sess.IsAdmin()
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	if sess := GetSession(c); sess != nil {
		return sess.UserID()
	}
	return 0
}
