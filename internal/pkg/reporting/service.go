package reporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/audit"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/security"
)

// Point awards for the reporting lifecycle.
const (
	PointsForReport     = 10
	PointsForResolution = 15
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidStatus  = errors.New("invalid report status")
	ErrMissingFields  = errors.New("description and location are required")
	ErrPhotosDisabled = errors.New("photo uploads are not configured")
	ErrInvalidPhoto   = errors.New("photo could not be decoded")
)

// StoredPhoto is what a photo store returns after persisting an upload.
// Latitude/Longitude are only meaningful when HasGPS is set.
type StoredPhoto struct {
	URL          string
	ThumbnailURL string
	Latitude     float64
	Longitude    float64
	HasGPS       bool
}

// PhotoStore persists report photos. Implemented by photostore.S3Store; a
// nil store disables photo handling.
type PhotoStore interface {
	Store(ctx context.Context, data []byte, filename string) (*StoredPhoto, error)
}

// CreateReportInput carries a new report submission. Photo is optional raw
// upload bytes; when present and carrying EXIF GPS data, it can stand in
// for missing coordinates.
type CreateReportInput struct {
	Latitude    float64
	Longitude   float64
	HasLocation bool
	Address     string
	Description string
	Photo       []byte
	PhotoName   string
}

// Service is the report manager: creation, status transitions and the
// point accounting tied to both.
type Service struct {
	reports repository.ReportRepository
	users   repository.UserRepository
	audit   *audit.Recorder
	photos  PhotoStore
}

// NewService wires the report manager. photos may be nil.
func NewService(reports repository.ReportRepository, users repository.UserRepository, recorder *audit.Recorder, photos PhotoStore) *Service {
	return &Service{
		reports: reports,
		users:   users,
		audit:   recorder,
		photos:  photos,
	}
}

// CreateReport persists a pending report for the session's user and
// credits the reporter. Requires an authenticated session.
func (s *Service) CreateReport(ctx context.Context, session *auth.Session, input CreateReportInput, ip string) (*models.Report, error) {
	if session == nil {
		return nil, auth.ErrNotAuthenticated
	}

	report := &models.Report{
		UUID:        uuid.New().String(),
		UserID:      session.UserID(),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     security.SanitizeInput(input.Address),
		Description: security.SanitizeInput(input.Description),
		Status:      models.ReportStatusPending,
	}

	// Reject before the photo upload, otherwise a doomed submission
	// leaves orphaned objects in the bucket. Location can still arrive
	// via the photo's EXIF data, so only the description is checked here.
	if report.Description == "" {
		return nil, ErrMissingFields
	}

	if len(input.Photo) > 0 {
		if s.photos == nil {
			return nil, ErrPhotosDisabled
		}
		stored, err := s.photos.Store(ctx, input.Photo, input.PhotoName)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		report.PhotoURL = stored.URL
		report.ThumbnailURL = stored.ThumbnailURL
		if !input.HasLocation && stored.HasGPS {
			report.Latitude = stored.Latitude
			report.Longitude = stored.Longitude
			input.HasLocation = true
		}
	}

	if !input.HasLocation {
		return nil, ErrMissingFields
	}

	if err := s.reports.Create(report); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	if err := s.users.AddPoints(session.UserID(), PointsForReport); err != nil {
		return nil, fmt.Errorf("credit reporter: %w", err)
	}
	session.User.Points += PointsForReport

	s.audit.Record(userIDString(session.UserID()), audit.ActionReportCreated,
		fmt.Sprintf("Report %s created", report.UUID), ip)

	return report, nil
}

// UpdateReportStatus moves a report to a new status. Unknown report ids are
// an explicit ErrReportNotFound. Transitions are unordered (any state to
// any state), but the resolution bonus for the report's owner is paid out
// exactly once, on the first transition to resolved.
func (s *Service) UpdateReportStatus(session *auth.Session, reportID uint, status, ip string) (*models.Report, error) {
	if session == nil {
		return nil, auth.ErrNotAuthenticated
	}
	if !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	report, err := s.reports.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("load report: %w", err)
	}

	awardResolution := false
	if status == models.ReportStatusResolved {
		awardResolution = report.MarkResolved(session.UserID())
	} else {
		report.Status = status
	}

	if err := s.reports.Update(report); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	if awardResolution {
		// The bonus goes to the report's owner, not the caller.
		if err := s.users.AddPoints(report.UserID, PointsForResolution); err != nil {
			return nil, fmt.Errorf("credit report owner: %w", err)
		}
	}

	s.audit.Record(userIDString(session.UserID()), audit.ActionReportStatusChanged,
		fmt.Sprintf("Report %s status changed to %s", report.UUID, status), ip)

	return report, nil
}

// ListReports returns a page of all reports, for the map and admin views.
func (s *Service) ListReports(offset, limit int) ([]models.Report, error) {
	return s.reports.List(offset, limit)
}

// ListByUser returns the reports submitted by the session's user.
func (s *Service) ListByUser(session *auth.Session) ([]models.Report, error) {
	if session == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return s.reports.GetByUserID(session.UserID())
}

func userIDString(id uint) string {
	return fmt.Sprintf("%d", id)
}
