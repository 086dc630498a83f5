package service

import (
	"context"
	"sort"

	"github.com/Brommah/hvc/internal/aggregate"
	"github.com/Brommah/hvc/internal/domain"
	"github.com/Brommah/hvc/internal/filter"
	"github.com/Brommah/hvc/internal/normalize"
	"github.com/Brommah/hvc/internal/notion"
)

// FollowupResponse is the payload of the candidates-needing-followup view:
// active high-value candidates whose last activity is overdue.
type FollowupResponse struct {
	Candidates []domain.Candidate `json:"candidates"`
	Summary    FollowupSummary    `json:"summary"`
}

// FollowupSummary holds the scalar block of the followup view.
type FollowupSummary struct {
	Total int `json:"total"`
	Hot   int `json:"hot"`
	// NoActivityTracking counts candidates included because they have no
	// tracked activity at all (the fail-open case).
	NoActivityTracking int `json:"noActivityTracking"`
}

// OverdueCandidates returns active high-value candidates that are overdue
// for followup, most overdue first. Candidates without activity tracking are
// maximally overdue and sort first.
func (d *Dashboard) OverdueCandidates(ctx context.Context) (*FollowupResponse, error) {
	// Terminal statuses are excluded server-side; the high-value and
	// overdue policies are applied client-side over the normalized set.
	activeFilter := notion.And(
		notion.SelectDoesNotEqual(normalize.PropStatus, domain.StatusAccepted),
		notion.SelectDoesNotEqual(normalize.PropStatus, domain.StatusCompanyRejected),
		notion.SelectDoesNotEqual(normalize.PropInterviewStatus, domain.InterviewStatusCompleted),
	)

	cands, _, err := d.fetch(ctx, activeFilter, nil)
	if err != nil {
		return nil, err
	}

	overdue := filter.Apply(cands, filter.IsActive, filter.IsHighValue, filter.IsOverdue)
	sortMostOverdueFirst(overdue)

	return &FollowupResponse{
		Candidates: overdue,
		Summary: FollowupSummary{
			Total: len(overdue),
			Hot: aggregate.Count(overdue, func(c domain.Candidate) bool {
				return c.HotCandidate
			}),
			NoActivityTracking: aggregate.Count(overdue, func(c domain.Candidate) bool {
				return c.HoursSinceLastActivity == nil
			}),
		},
	}, nil
}

// sortMostOverdueFirst orders by hours since last activity descending, with
// untracked candidates (policy: maximally overdue) first. Ties break by name
// for deterministic output.
func sortMostOverdueFirst(cands []domain.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i].HoursSinceLastActivity, cands[j].HoursSinceLastActivity
		switch {
		case a == nil && b == nil:
			return cands[i].Name < cands[j].Name
		case a == nil:
			return true
		case b == nil:
			return false
		case *a != *b:
			return *a > *b
		default:
			return cands[i].Name < cands[j].Name
		}
	})
}
