package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/usercontext"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAuthLogin authenticates a user and establishes the cookie session.
func HandleAuthLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "malformed request body",
		})
	}

	sess, err := authManager.Login(req.Email, req.Password, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := establishSession(c, sess); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "failed to establish session",
		})
	}

	return c.JSON(fiber.Map{
		"user":  sess.User,
		"token": sess.Token,
	})
}

// HandleAuthRegister creates an account and logs it straight in.
func HandleAuthRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "malformed request body",
		})
	}

	sess, err := authManager.Register(req.Username, req.Email, req.Password, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := establishSession(c, sess); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "failed to establish session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  sess.User,
		"token": sess.Token,
	})
}

// HandleAuthLogout destroys the session. Idempotent: logging out without a
// session succeeds quietly.
func HandleAuthLogout(c *fiber.Ctx) error {
	authManager.Logout(usercontext.GetSession(c), c.IP())
	destroySession(c)

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

// HandleGetMe returns the authenticated user's public record.
func HandleGetMe(c *fiber.Ctx) error {
	sess := usercontext.GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}

	return c.JSON(fiber.Map{
		"user": sess.User,
	})
}
