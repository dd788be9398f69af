package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
)

var (
	adminUserRepo   repository.UserRepository
	adminReportRepo repository.ReportRepository
	adminRewardRepo repository.RewardRepository
	adminAuditRepo  repository.AuditLogRepository
)

// InitializeAdminController injects the repositories the admin panel reads
// from. Must run before the router installs the admin routes.
func InitializeAdminController(repos *repository.Repositories) {
	adminUserRepo = repos.User
	adminReportRepo = repos.Report
	adminRewardRepo = repos.Reward
	adminAuditRepo = repos.Audit
}

// HandleAdminOverview returns the dashboard counters.
func HandleAdminOverview(c *fiber.Ctx) error {
	totalUsers, err := adminUserRepo.Count()
	if err != nil {
		return respondServiceError(c, err)
	}
	totalReports, err := adminReportRepo.Count()
	if err != nil {
		return respondServiceError(c, err)
	}
	pending, err := adminReportRepo.CountByStatus(models.ReportStatusPending)
	if err != nil {
		return respondServiceError(c, err)
	}
	resolved, err := adminReportRepo.CountByStatus(models.ReportStatusResolved)
	if err != nil {
		return respondServiceError(c, err)
	}
	redemptions, err := adminRewardRepo.CountRedemptions()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"total_users":      totalUsers,
		"total_reports":    totalReports,
		"pending_reports":  pending,
		"resolved_reports": resolved,
		"redemptions":      redemptions,
	})
}

// HandleAdminListUsers returns a page of user accounts (public projection).
func HandleAdminListUsers(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	users, err := adminUserRepo.List(offset, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	return c.JSON(fiber.Map{
		"users": public,
	})
}

// HandleAdminAuditLog returns the newest audit entries (default 20, like
// the dashboard's activity tab).
func HandleAdminAuditLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 1000 {
		limit = 20
	}

	entries, err := adminAuditRepo.List(limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"audit_logs": entries,
	})
}
