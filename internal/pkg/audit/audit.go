package audit

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
)

// Audit action tags. Free text is allowed by the schema; these constants
// cover every event the core emits.
const (
	ActionLoginSuccess        = "LOGIN_SUCCESS"
	ActionLoginFailed         = "LOGIN_FAILED"
	ActionLoginRateLimited    = "LOGIN_RATE_LIMITED"
	ActionRegisterSuccess     = "REGISTER_SUCCESS"
	ActionRegisterFailed      = "REGISTER_FAILED"
	ActionRegisterRateLimited = "REGISTER_RATE_LIMITED"
	ActionLogout              = "LOGOUT"
	ActionReportCreated       = "REPORT_CREATED"
	ActionReportStatusChanged = "REPORT_STATUS_CHANGED"
	ActionRewardRedeemed      = "REWARD_REDEEMED"
)

// Recorder appends audit log entries. A failed append is logged and
// swallowed: auditing must never turn a successful operation into a failure.
type Recorder struct {
	repo repository.AuditLogRepository
}

// NewRecorder creates a recorder on top of the audit log repository.
func NewRecorder(repo repository.AuditLogRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record writes one audit entry. userID may be empty, in which case the
// entry is attributed to "anonymous". ip may be empty outside a request
// context and defaults to localhost.
func (r *Recorder) Record(userID, action, details, ip string) {
	if userID == "" {
		userID = models.AuditUserAnonymous
	}
	if ip == "" {
		ip = "localhost"
	}

	entry := &models.AuditLog{
		EventID:   uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}

	if err := r.repo.Create(entry); err != nil {
		log.Errorf("[Audit] failed to record %s for user %s: %v", action, userID, err)
	}
}
