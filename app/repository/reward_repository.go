package repository

import (
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

// rewardRepository implements the RewardRepository interface
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository instance
func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

// Create adds a catalog entry
func (r *rewardRepository) Create(reward *models.Reward) error {
	return r.db.Create(reward).Error
}

// GetByID retrieves a reward by its ID
func (r *rewardRepository) GetByID(id uint) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.First(&reward, id).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetAll returns the full reward catalog
func (r *rewardRepository) GetAll() ([]models.Reward, error) {
	var rewards []models.Reward
	err := r.db.Order("points_required ASC").Find(&rewards).Error
	return rewards, err
}

// Count returns the number of catalog entries
func (r *rewardRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Reward{}).Count(&count).Error
	return count, err
}

// CreateRedemption appends a redemption record. Redemptions are never
// updated or deleted.
func (r *rewardRepository) CreateRedemption(userReward *models.UserReward) error {
	return r.db.Create(userReward).Error
}

// GetRedemptionsByUserID returns a user's redemption history, newest first
func (r *rewardRepository) GetRedemptionsByUserID(userID uint) ([]models.UserReward, error) {
	var redemptions []models.UserReward
	err := r.db.Where("user_id = ?", userID).Order("redeemed_at DESC").Find(&redemptions).Error
	return redemptions, err
}

// CountRedemptions returns the total number of redemption records
func (r *rewardRepository) CountRedemptions() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserReward{}).Count(&count).Error
	return count, err
}
