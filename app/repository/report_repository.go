package repository

import (
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report in the database
func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by its ID
func (r *reportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByUUID retrieves a report by its public UUID
func (r *reportRepository) GetByUUID(uuid string) (*models.Report, error) {
	var report models.Report
	err := r.db.Where("uuid = ?", uuid).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByUserID retrieves all reports submitted by a user, newest first
func (r *reportRepository) GetByUserID(userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// Update updates an existing report in the database
func (r *reportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// List retrieves a paginated list of reports, newest first
func (r *reportRepository) List(offset, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error
	return reports, err
}

// Count returns the total number of reports
func (r *reportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of reports in the given status
func (r *reportRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
