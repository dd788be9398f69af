package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/session"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/usercontext"
)

// UserContextMiddleware rebuilds the auth session for every request from
// the cookie session. The user record is loaded fresh so point balances in
// the session never go stale across requests.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		// Anonymous request - no session data
		return c.Next()
	}

	id, ok := userID.(uint)
	if !ok {
		return c.Next()
	}

	user, err := repository.GetGlobalRepositories().User.GetByID(id)
	if err != nil {
		// Stale cookie pointing at a removed account
		_ = sess.Destroy()
		return c.Next()
	}

	c.Locals(usercontext.KeySession, &auth.Session{
		Token: session.GetSessionValue(c, usercontext.KeyAuthToken),
		User:  user.Public(),
	})

	return c.Next()
}
