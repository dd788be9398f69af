package models

import "time"

// AuditUserAnonymous is recorded when no authenticated user is attached to
// an audit event (e.g. a failed login for an unknown email).
const AuditUserAnonymous = "anonymous"

// AuditLog is an append-only record of a security-relevant action. The log
// is capped at the newest 1000 entries; the repository truncates oldest
// rows first.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"event_id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Action    string    `gorm:"type:varchar(64);not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
