package repository

import (
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	AddPoints(id uint, delta int) error
	DeductPoints(id uint, cost int) (bool, error)
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	TouchLastLogin(id uint) error
}

// ReportRepository defines the interface for report-related database operations
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	GetByUUID(uuid string) (*models.Report, error)
	GetByUserID(userID uint) ([]models.Report, error)
	Update(report *models.Report) error
	List(offset, limit int) ([]models.Report, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// RewardRepository defines the interface for the reward catalog and
// redemption records
type RewardRepository interface {
	Create(reward *models.Reward) error
	GetByID(id uint) (*models.Reward, error)
	GetAll() ([]models.Reward, error)
	Count() (int64, error)
	CreateRedemption(userReward *models.UserReward) error
	GetRedemptionsByUserID(userID uint) ([]models.UserReward, error)
	CountRedemptions() (int64, error)
}

// AuditLogRepository defines the interface for the append-only audit log
type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	List(limit int) ([]models.AuditLog, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User   UserRepository
	Report ReportRepository
	Reward RewardRepository
	Audit  AuditLogRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:   NewUserRepository(db),
		Report: NewReportRepository(db),
		Reward: NewRewardRepository(db),
		Audit:  NewAuditLogRepository(db),
	}
}
