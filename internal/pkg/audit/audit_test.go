package audit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
)

type memAuditRepo struct {
	entries []models.AuditLog
	failing bool
}

func (r *memAuditRepo) Create(entry *models.AuditLog) error {
	if r.failing {
		return assert.AnError
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memAuditRepo) List(limit int) ([]models.AuditLog, error) { return r.entries, nil }
func (r *memAuditRepo) Count() (int64, error)                     { return int64(len(r.entries)), nil }

func TestRecord(t *testing.T) {
	repo := &memAuditRepo{}
	rec := NewRecorder(repo)

	rec.Record("42", ActionLoginSuccess, "User logged in successfully", "10.0.0.1")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "42", entry.UserID)
	assert.Equal(t, ActionLoginSuccess, entry.Action)
	assert.Equal(t, "User logged in successfully", entry.Details)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)

	_, err := uuid.Parse(entry.EventID)
	assert.NoError(t, err)
}

func TestRecordDefaults(t *testing.T) {
	repo := &memAuditRepo{}
	rec := NewRecorder(repo)

	rec.Record("", ActionLoginFailed, "Login attempt with non-existent email: ghost@example.com", "")

	require.Len(t, repo.entries, 1)
	assert.Equal(t, models.AuditUserAnonymous, repo.entries[0].UserID)
	assert.Equal(t, "localhost", repo.entries[0].IPAddress)
}

func TestRecordSwallowsRepositoryErrors(t *testing.T) {
	rec := NewRecorder(&memAuditRepo{failing: true})

	// must not panic or surface the failure
	rec.Record("42", ActionLogout, "User logged out", "10.0.0.1")
}

func TestEventIDsUnique(t *testing.T) {
	repo := &memAuditRepo{}
	rec := NewRecorder(repo)

	for i := 0; i < 50; i++ {
		rec.Record("1", ActionReportCreated, "Report created", "10.0.0.1")
	}

	seen := make(map[string]struct{})
	for _, e := range repo.entries {
		if _, dup := seen[e.EventID]; dup {
			t.Fatalf("duplicate event id %s", e.EventID)
		}
		seen[e.EventID] = struct{}{}
	}
}
