package rewards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/audit"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/reporting"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/security"
)

type flowReportRepo struct {
	reports map[uint]*models.Report
	nextID  uint
}

func (r *flowReportRepo) Create(report *models.Report) error {
	report.ID = r.nextID
	r.nextID++
	copied := *report
	r.reports[report.ID] = &copied
	return nil
}

func (r *flowReportRepo) GetByID(id uint) (*models.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *rep
	return &copied, nil
}

func (r *flowReportRepo) GetByUUID(uuid string) (*models.Report, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *flowReportRepo) GetByUserID(userID uint) ([]models.Report, error) {
	var out []models.Report
	for _, rep := range r.reports {
		if rep.UserID == userID {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *flowReportRepo) Update(report *models.Report) error {
	copied := *report
	r.reports[report.ID] = &copied
	return nil
}

func (r *flowReportRepo) List(offset, limit int) ([]models.Report, error) { return nil, nil }
func (r *flowReportRepo) Count() (int64, error)                           { return int64(len(r.reports)), nil }
func (r *flowReportRepo) CountByStatus(status string) (int64, error)      { return 0, nil }

type flowUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func (r *flowUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *flowUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *flowUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *flowUserRepo) Update(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *flowUserRepo) AddPoints(id uint, delta int) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Points += delta
	return nil
}

func (r *flowUserRepo) DeductPoints(id uint, cost int) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	if u.Points < cost {
		return false, nil
	}
	u.Points -= cost
	return true, nil
}

func (r *flowUserRepo) List(offset, limit int) ([]models.User, error) { return nil, nil }
func (r *flowUserRepo) Count() (int64, error)                         { return int64(len(r.users)), nil }
func (r *flowUserRepo) TouchLastLogin(id uint) error                  { return nil }

// Full lifecycle: register, submit a report, have it resolved, redeem a
// reward. The balance moves 0 -> 10 -> 25 -> 15.
func TestReportAndRedeemLifecycle(t *testing.T) {
	users := &flowUserRepo{users: make(map[uint]*models.User), nextID: 1}
	reports := &flowReportRepo{reports: make(map[uint]*models.Report), nextID: 1}
	auditRepo := &fakeAuditRepo{}
	recorder := audit.NewRecorder(auditRepo)

	authManager := auth.NewManager(users, security.NewRateLimiter(nil), recorder)
	reportService := reporting.NewService(reports, users, recorder, nil)
	rewardService := NewService(newSeededCatalog(t), users, recorder)

	session, err := authManager.Register("alice", "alice@example.com", "Str0ng!Pass", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, session.User.Points)

	report, err := reportService.CreateReport(context.Background(), session, reporting.CreateReportInput{
		Latitude:    52.52,
		Longitude:   13.405,
		HasLocation: true,
		Description: "Overflowing bin at the park entrance",
	}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 10, session.User.Points)

	adminUser, err := models.CreateUser("admin", "admin@example.com", "Adm1n!Pass")
	require.NoError(t, err)
	adminUser.Role = models.ROLE_ADMIN
	require.NoError(t, users.Create(adminUser))
	adminSession := &auth.Session{Token: security.GenerateSessionToken(), User: adminUser.Public()}

	_, err = reportService.UpdateReportStatus(adminSession, report.ID, models.ReportStatusResolved, "10.0.0.2")
	require.NoError(t, err)

	alice, err := users.GetByID(session.UserID())
	require.NoError(t, err)
	assert.Equal(t, 25, alice.Points)

	redemption, err := rewardService.Redeem(session, 1, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 10, redemption.PointsRedeemed)
	assert.Equal(t, "Eco Warrior Badge", redemption.RewardItem)

	alice, err = users.GetByID(session.UserID())
	require.NoError(t, err)
	assert.Equal(t, 15, alice.Points)
	assert.Equal(t, 15, session.User.Points)

	// every step of the journey left an audit entry
	actions := make(map[string]int)
	for _, e := range auditRepo.entries {
		actions[e.Action]++
	}
	assert.Equal(t, 1, actions[audit.ActionRegisterSuccess])
	assert.Equal(t, 1, actions[audit.ActionReportCreated])
	assert.Equal(t, 1, actions[audit.ActionReportStatusChanged])
	assert.Equal(t, 1, actions[audit.ActionRewardRedeemed])
}

func newSeededCatalog(t *testing.T) *fakeRewardRepo {
	t.Helper()
	repo := newFakeRewardRepo()
	for _, reward := range models.DefaultRewards() {
		r := reward
		require.NoError(t, repo.Create(&r))
	}
	return repo
}
