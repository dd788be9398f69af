package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/reporting"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/rewards"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/session"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/usercontext"
)

var (
	authManager   *auth.Manager
	reportService *reporting.Service
	rewardService *rewards.Service
)

// InitializeControllers injects the core services. Must run before the
// router installs any route.
func InitializeControllers(manager *auth.Manager, reports *reporting.Service, rewardSvc *rewards.Service) {
	authManager = manager
	reportService = reports
	rewardService = rewardSvc
}

// establishSession copies an authenticated session into the cookie session
// so subsequent requests can rebuild it.
func establishSession(c *fiber.Ctx, s *auth.Session) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, s.UserID())
	sess.Set(usercontext.KeyUsername, s.User.Username)
	sess.Set(usercontext.KeyIsAdmin, s.IsAdmin())
	sess.Set(usercontext.KeyAuthToken, s.Token)

	return sess.Save()
}

// destroySession drops the cookie session. Safe to call without one.
func destroySession(c *fiber.Ctx) {
	if sess, err := session.GetSessionStore().Get(c); err == nil {
		_ = sess.Destroy()
	}
}

// respondServiceError converts a core error into its JSON outcome.
// Credential failures stay generic; validation failures carry the specific
// message from the error.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "rate_limited",
			"message": auth.ErrRateLimited.Error(),
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "invalid_credentials",
			"message": auth.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, auth.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "conflict",
			"message": auth.ErrEmailTaken.Error(),
		})
	case errors.Is(err, auth.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": auth.ErrNotAuthenticated.Error(),
		})
	case errors.Is(err, auth.ErrInvalidInput),
		errors.Is(err, reporting.ErrInvalidStatus),
		errors.Is(err, reporting.ErrMissingFields),
		errors.Is(err, reporting.ErrPhotosDisabled),
		errors.Is(err, reporting.ErrInvalidPhoto):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": err.Error(),
		})
	case errors.Is(err, reporting.ErrReportNotFound),
		errors.Is(err, rewards.ErrRewardNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": err.Error(),
		})
	case errors.Is(err, rewards.ErrInsufficientPoints):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "insufficient_points",
			"message": rewards.ErrInsufficientPoints.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal",
		"message": "something went wrong",
	})
}
