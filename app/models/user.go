package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/security"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/utils"
)

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

// User is the internal account record. PasswordHash never leaves this
// package through JSON; callers that hand user data to the presentation
// layer use Public() instead.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"type:varchar(150)" json:"username" validate:"required,min=3,max=150"`
	Email        string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	PasswordHash string         `gorm:"type:text" json:"-" validate:"required"`
	Role         string         `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Points       int            `gorm:"not null;default:0" json:"points" validate:"min=0"`
	LastLoginAt  *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// PublicUser is the session-facing projection of a User. It has no field
// for the credential, so a hash can not leak through it by construction.
type PublicUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Points    int       `json:"points"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a new user record with a hashed credential. Email is
// expected to be sanitized and lowercased by the caller.
func CreateUser(username string, email string, password string) (*User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         ROLE_USER,
		Points:       0,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Public returns the credential-free projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Points:    u.Points,
		AvatarURL: utils.GetGravatarURL(u.Email, 80),
		CreatedAt: u.CreatedAt,
	}
}

// CheckPassword verifies if the provided password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return security.VerifyPassword(password, u.PasswordHash)
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}
