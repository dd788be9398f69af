package models

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

// Report is a waste report submitted by a user. Reports are never deleted;
// they only move between statuses. ResolvedAt records the first transition
// to resolved and guards the one-time resolution bonus.
type Report struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UUID         string     `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	User         *User      `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
	Latitude     float64    `gorm:"not null" json:"latitude"`
	Longitude    float64    `gorm:"not null" json:"longitude"`
	Address      string     `gorm:"type:varchar(255);default:null" json:"address,omitempty"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	PhotoURL     string     `gorm:"type:varchar(255);default:null" json:"photo_url,omitempty"`
	ThumbnailURL string     `gorm:"type:varchar(255);default:null" json:"thumbnail_url,omitempty"`
	Status       string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ResolvedByID *uint      `gorm:"index" json:"resolved_by_id,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ValidReportStatus reports whether s is one of the known report states.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}

// WasResolved reports whether the resolution bonus has already been paid out.
func (r *Report) WasResolved() bool {
	return r.ResolvedAt != nil
}

// MarkResolved stamps the first resolution. Returns false if the report was
// already resolved once before.
func (r *Report) MarkResolved(by uint) bool {
	if r.WasResolved() {
		r.Status = ReportStatusResolved
		return false
	}
	now := time.Now()
	r.Status = ReportStatusResolved
	r.ResolvedAt = &now
	r.ResolvedByID = &by
	return true
}
