package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidReportStatus(t *testing.T) {
	for _, s := range []string{ReportStatusPending, ReportStatusResolved, ReportStatusRejected} {
		if !ValidReportStatus(s) {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "open", "done", "PENDING"} {
		if ValidReportStatus(s) {
			t.Fatalf("expected %q to be an invalid status", s)
		}
	}
}

func TestMarkResolvedAwardsOnce(t *testing.T) {
	report := &Report{Status: ReportStatusPending}

	require.True(t, report.MarkResolved(42))
	assert.Equal(t, ReportStatusResolved, report.Status)
	require.NotNil(t, report.ResolvedAt)
	require.NotNil(t, report.ResolvedByID)
	assert.Equal(t, uint(42), *report.ResolvedByID)
	first := *report.ResolvedAt

	// a second resolution keeps the original stamp and awards nothing
	assert.False(t, report.MarkResolved(99))
	assert.Equal(t, ReportStatusResolved, report.Status)
	assert.Equal(t, first, *report.ResolvedAt)
	assert.Equal(t, uint(42), *report.ResolvedByID)
}

func TestMarkResolvedAfterReopen(t *testing.T) {
	report := &Report{Status: ReportStatusPending}
	require.True(t, report.MarkResolved(1))

	// moving away from resolved does not reset the bonus guard
	report.Status = ReportStatusPending
	assert.False(t, report.MarkResolved(2))
	assert.True(t, report.WasResolved())
}
