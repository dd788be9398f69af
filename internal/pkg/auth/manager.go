package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/audit"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/security"
)

// Rate limit policies. The limiter key is scoped by the raw email the
// caller supplied, before sanitization, so malformed attempts count too.
const (
	loginMaxAttempts = 5
	loginWindow      = 5 * time.Minute

	registerMaxAttempts = 3
	registerWindow      = time.Hour
)

// Manager orchestrates login, registration and logout. The per-session
// state machine is Anonymous -> Authenticated -> Anonymous with no
// intermediate states.
type Manager struct {
	users   repository.UserRepository
	limiter *security.RateLimiter
	audit   *audit.Recorder
}

// NewManager wires the session/auth manager.
func NewManager(users repository.UserRepository, limiter *security.RateLimiter, recorder *audit.Recorder) *Manager {
	return &Manager{
		users:   users,
		limiter: limiter,
		audit:   recorder,
	}
}

// Login authenticates a user by email and password and returns a fresh
// session. Every attempt produces exactly one audit entry. Credential
// failures are indistinguishable to the caller.
func (m *Manager) Login(email, password, ip string) (*Session, error) {
	if !m.limiter.Allow("login_"+email, loginMaxAttempts, loginWindow) {
		m.audit.Record("", audit.ActionLoginRateLimited, fmt.Sprintf("Rate limit exceeded for email: %s", email), ip)
		return nil, ErrRateLimited
	}

	sanitizedEmail := security.NormalizeEmail(email)
	if !security.IsValidEmail(sanitizedEmail) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	user, err := m.users.GetByEmail(sanitizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m.audit.Record("", audit.ActionLoginFailed, fmt.Sprintf("Login attempt with non-existent email: %s", sanitizedEmail), ip)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if !user.CheckPassword(password) {
		m.audit.Record(userIDString(user.ID), audit.ActionLoginFailed, fmt.Sprintf("Invalid password for user: %d", user.ID), ip)
		return nil, ErrInvalidCredentials
	}

	if err := m.users.TouchLastLogin(user.ID); err != nil {
		log.Warnf("[Auth] failed to stamp last login for user %d: %v", user.ID, err)
	}

	session := &Session{
		Token: security.GenerateSessionToken(),
		User:  user.Public(),
	}

	m.audit.Record(userIDString(user.ID), audit.ActionLoginSuccess, "User logged in successfully", ip)
	return session, nil
}

// Register validates the input, creates the account and promotes it
// straight to an authenticated session, like login's success path.
func (m *Manager) Register(username, email, password, ip string) (*Session, error) {
	if !m.limiter.Allow("register_"+email, registerMaxAttempts, registerWindow) {
		m.audit.Record("", audit.ActionRegisterRateLimited, fmt.Sprintf("Rate limit exceeded for email: %s", email), ip)
		return nil, ErrRateLimited
	}

	sanitizedUsername := security.SanitizeInput(username)
	sanitizedEmail := security.NormalizeEmail(email)

	if len(sanitizedUsername) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters long", ErrInvalidInput)
	}
	if !security.IsValidEmail(sanitizedEmail) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if !security.IsStrongPassword(password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters with uppercase, lowercase, number, and special character", ErrInvalidInput)
	}

	if existing, err := m.users.GetByEmail(sanitizedEmail); err == nil && existing != nil {
		m.audit.Record("", audit.ActionRegisterFailed, fmt.Sprintf("Registration attempt with existing email: %s", sanitizedEmail), ip)
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("register lookup: %w", err)
	}

	user, err := models.CreateUser(sanitizedUsername, sanitizedEmail, password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := m.users.Create(user); err != nil {
		// The unique index catches a concurrent registration for the
		// same email that slipped past the lookup above.
		m.audit.Record("", audit.ActionRegisterFailed, fmt.Sprintf("Registration write failed for email: %s", sanitizedEmail), ip)
		return nil, fmt.Errorf("persist user: %w", err)
	}

	session := &Session{
		Token: security.GenerateSessionToken(),
		User:  user.Public(),
	}

	m.audit.Record(userIDString(user.ID), audit.ActionRegisterSuccess, fmt.Sprintf("New user registered: %s", sanitizedUsername), ip)
	return session, nil
}

// Logout destroys the session. Calling it without an active session is a
// no-op, not an error.
func (m *Manager) Logout(session *Session, ip string) {
	if session == nil {
		return
	}
	m.audit.Record(userIDString(session.UserID()), audit.ActionLogout, "User logged out", ip)
	session.Token = ""
}

func userIDString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
