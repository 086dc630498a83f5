// Package filter holds the boolean pipeline policies applied to candidates.
// Every predicate is a pure function of one Candidate; views compose them
// with Apply.
package filter

import (
	"strings"

	"github.com/Brommah/hvc/internal/domain"
)

// OverdueThresholdHours is the activity window after which a candidate needs
// followup. The comparison is strict: exactly 24 hours is not overdue.
const OverdueThresholdHours = 24

// interviewStageMarkers are the lowercase substrings that indicate a
// candidate has reached the interview pipeline. Containment is deliberately
// loose so label variants like "Phone Screen Scheduled" still match.
var interviewStageMarkers = []string{
	"scheduled",
	"completed",
	"phone screen",
	"on-site",
	"final round",
	"offer",
}

// Predicate is a boolean policy over one candidate.
type Predicate func(domain.Candidate) bool

// Apply returns the candidates matching every given predicate, preserving
// input order.
func Apply(cands []domain.Candidate, preds ...Predicate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if matchesAll(c, preds) {
			out = append(out, c)
		}
	}
	return out
}

func matchesAll(c domain.Candidate, preds []Predicate) bool {
	for _, p := range preds {
		if !p(c) {
			return false
		}
	}
	return true
}

// IsHighValue reports whether a candidate is flagged hot, top-priority, or
// high-stratification.
func IsHighValue(c domain.Candidate) bool {
	return c.HotCandidate ||
		stringEquals(c.Priority, domain.PriorityFirst) ||
		stringEquals(c.Stratification, domain.StratificationHigh)
}

// IsOverdue reports whether a candidate has gone more than the threshold
// without tracked activity. A candidate with no activity tracking at all is
// treated as maximally overdue: the policy fails open toward visibility.
func IsOverdue(c domain.Candidate) bool {
	if c.HoursSinceLastActivity == nil {
		return true
	}
	return *c.HoursSinceLastActivity > OverdueThresholdHours
}

// IsActive reports whether a candidate is still in play: not accepted, not
// rejected by the company, and not through a completed interview.
func IsActive(c domain.Candidate) bool {
	if stringEquals(c.Status, domain.StatusCompanyRejected) ||
		stringEquals(c.Status, domain.StatusAccepted) {
		return false
	}
	return !stringEquals(c.InterviewStatus, domain.InterviewStatusCompleted)
}

// IsPendingHumanReview reports whether a candidate has been AI-processed but
// is still waiting on human review.
func IsPendingHumanReview(c domain.Candidate) bool {
	if c.AIProcessedAt == nil || c.CVVerifiedAt != nil || c.PassedHumanFilter {
		return false
	}
	return !stringEquals(c.Status, domain.StatusCompanyRejected) &&
		!stringEquals(c.Status, domain.StatusCandidateRejected)
}

// IsAwaitingVerification reports whether a candidate is missing human CV
// verification.
func IsAwaitingVerification(c domain.Candidate) bool {
	return c.CVVerifiedAt == nil
}

// HasReachedInterview reports whether the interview status names any
// positive pipeline stage.
func HasReachedInterview(c domain.Candidate) bool {
	if c.InterviewStatus == nil {
		return false
	}
	status := strings.ToLower(*c.InterviewStatus)
	for _, marker := range interviewStageMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

func stringEquals(s *string, value string) bool {
	return s != nil && *s == value
}
