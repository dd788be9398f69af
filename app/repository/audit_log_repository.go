package repository

import (
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

// maxAuditLogEntries bounds audit retention; oldest rows are dropped first.
const maxAuditLogEntries = 1000

// auditLogRepository implements the AuditLogRepository interface
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create appends an audit entry and enforces the FIFO retention cap.
func (r *auditLogRepository) Create(entry *models.AuditLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return err
	}
	return r.truncate()
}

// List returns the newest entries up to limit
func (r *auditLogRepository) List(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// Count returns the number of retained entries
func (r *auditLogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AuditLog{}).Count(&count).Error
	return count, err
}

// truncate deletes everything older than the newest maxAuditLogEntries rows.
func (r *auditLogRepository) truncate() error {
	var count int64
	if err := r.db.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
		return err
	}
	if count <= maxAuditLogEntries {
		return nil
	}

	var cutoff models.AuditLog
	err := r.db.Model(&models.AuditLog{}).
		Order("id DESC").
		Offset(maxAuditLogEntries - 1).
		Limit(1).
		First(&cutoff).Error
	if err != nil {
		return err
	}

	return r.db.Where("id < ?", cutoff.ID).Delete(&models.AuditLog{}).Error
}
