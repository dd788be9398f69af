package models

import "time"

// UserReward is an append-only redemption record. PointsRedeemed and
// RewardItem snapshot the catalog entry at redemption time so later catalog
// changes do not rewrite history. A user may redeem the same reward more
// than once.
type UserReward struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	RewardID       uint      `gorm:"index;not null" json:"reward_id"`
	PointsRedeemed int       `gorm:"not null" json:"points_redeemed"`
	RewardItem     string    `gorm:"type:varchar(150);not null" json:"reward_item"`
	RedeemedAt     time.Time `gorm:"autoCreateTime" json:"redeemed_at"`
}
