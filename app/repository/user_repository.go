package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address. Emails are stored
// lowercased; the lookup lowercases the argument so the comparison stays
// case-insensitive regardless of collation.
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// AddPoints credits (or debits, with a negative delta) a user's point
// balance in a single UPDATE so concurrent awards do not lose increments.
func (r *userRepository) AddPoints(id uint, delta int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}

// DeductPoints debits cost from a user's balance only when the balance
// covers it, as one conditional UPDATE. Reports whether the debit applied,
// so concurrent redemptions cannot both spend the same points.
func (r *userRepository) DeductPoints(id uint, cost int) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND points >= ?", id, cost).
		UpdateColumn("points", gorm.Expr("points - ?", cost))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List retrieves a paginated list of users
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// TouchLastLogin stamps the user's last successful login time
func (r *userRepository) TouchLastLogin(id uint) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}
