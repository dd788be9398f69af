package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	RewardCategoryBadge    = "badge"
	RewardCategoryDiscount = "discount"
	RewardCategoryItem     = "item"
)

// Reward is a static catalog entry. The catalog is seeded once when empty
// and immutable in normal operation.
type Reward struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=3,max=150"`
	Description    string    `gorm:"type:text" json:"description"`
	PointsRequired int       `gorm:"not null" json:"points_required" validate:"gt=0"`
	Category       string    `gorm:"type:varchar(20);not null" json:"category" validate:"oneof=badge discount item"`
	ImageURL       string    `gorm:"type:varchar(255);default:null" json:"image_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Reward) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// DefaultRewards is the catalog the store is seeded with when empty.
func DefaultRewards() []Reward {
	return []Reward{
		{
			Name:           "Eco Warrior Badge",
			Description:    "Complete your first waste report",
			PointsRequired: 10,
			Category:       RewardCategoryBadge,
		},
		{
			Name:           "Green Champion",
			Description:    "Report 10 waste locations",
			PointsRequired: 100,
			Category:       RewardCategoryBadge,
		},
		{
			Name:           "Coffee Shop Discount",
			Description:    "10% discount at partner cafes",
			PointsRequired: 50,
			Category:       RewardCategoryDiscount,
		},
		{
			Name:           "Eco-friendly Water Bottle",
			Description:    "Reusable steel water bottle",
			PointsRequired: 200,
			Category:       RewardCategoryItem,
		},
	}
}
