package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/hvc/internal/domain"
)

func sptr(s string) *string { return &s }

func fptr(v float64) *float64 { return &v }

func TestIsHighValue(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Candidate
		want bool
	}{
		{"hot flag", domain.Candidate{HotCandidate: true}, true},
		{"first priority", domain.Candidate{Priority: sptr(domain.PriorityFirst)}, true},
		{"high stratification", domain.Candidate{Stratification: sptr(domain.StratificationHigh)}, true},
		{"second priority", domain.Candidate{Priority: sptr("2nd")}, false},
		{"medium stratification", domain.Candidate{Stratification: sptr("M")}, false},
		{"no signals", domain.Candidate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHighValue(tt.c))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, IsOverdue(domain.Candidate{}), "untracked activity fails open")
	assert.True(t, IsOverdue(domain.Candidate{HoursSinceLastActivity: fptr(24.5)}))
	assert.False(t, IsOverdue(domain.Candidate{HoursSinceLastActivity: fptr(24)}), "threshold is strict")
	assert.False(t, IsOverdue(domain.Candidate{HoursSinceLastActivity: fptr(3)}))
}

func TestApply_OverdueHighValueScenario(t *testing.T) {
	hot := func(name string, hours *float64) domain.Candidate {
		return domain.Candidate{Name: name, HotCandidate: true, HoursSinceLastActivity: hours}
	}

	cands := []domain.Candidate{
		hot("recently active", fptr(10)),
		hot("never tracked", nil),
		{Name: "ordinary but stale", HoursSinceLastActivity: fptr(30)},
	}

	got := Apply(cands, IsHighValue, IsOverdue)

	require.Len(t, got, 1)
	assert.Equal(t, "never tracked", got[0].Name)
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(domain.Candidate{}))
	assert.True(t, IsActive(domain.Candidate{Status: sptr("Screening")}))
	assert.True(t, IsActive(domain.Candidate{Status: sptr(domain.StatusCandidateRejected)}),
		"candidate-side rejection does not close the record for followup")
	assert.False(t, IsActive(domain.Candidate{Status: sptr(domain.StatusAccepted)}))
	assert.False(t, IsActive(domain.Candidate{Status: sptr(domain.StatusCompanyRejected)}))
	assert.False(t, IsActive(domain.Candidate{InterviewStatus: sptr(domain.InterviewStatusCompleted)}))
}

func TestIsPendingHumanReview(t *testing.T) {
	processed := sptr("2026-03-01T10:00:00Z")
	verified := sptr("2026-03-02")

	tests := []struct {
		name string
		c    domain.Candidate
		want bool
	}{
		{"processed and unreviewed", domain.Candidate{AIProcessedAt: processed}, true},
		{"not yet processed", domain.Candidate{}, false},
		{"already verified", domain.Candidate{AIProcessedAt: processed, CVVerifiedAt: verified}, false},
		{"already passed", domain.Candidate{AIProcessedAt: processed, PassedHumanFilter: true}, false},
		{"company rejected", domain.Candidate{AIProcessedAt: processed, Status: sptr(domain.StatusCompanyRejected)}, false},
		{"candidate rejected", domain.Candidate{AIProcessedAt: processed, Status: sptr(domain.StatusCandidateRejected)}, false},
		{"accepted stays in queue", domain.Candidate{AIProcessedAt: processed, Status: sptr(domain.StatusAccepted)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPendingHumanReview(tt.c))
		})
	}
}

func TestHasReachedInterview(t *testing.T) {
	tests := []struct {
		status *string
		want   bool
	}{
		{nil, false},
		{sptr("Phone Screen Scheduled"), true},
		{sptr("Completed"), true},
		{sptr("On-Site"), true},
		{sptr("Final Round"), true},
		{sptr("Offer Extended"), true},
		{sptr("Not Started"), false},
	}

	for _, tt := range tests {
		c := domain.Candidate{InterviewStatus: tt.status}
		assert.Equal(t, tt.want, HasReachedInterview(c), "status %v", tt.status)
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	cands := []domain.Candidate{
		{Name: "a", HotCandidate: true},
		{Name: "b"},
		{Name: "c", HotCandidate: true},
	}

	got := Apply(cands, IsHighValue)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}
