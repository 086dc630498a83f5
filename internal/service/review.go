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

// PendingReviewResponse is the payload of the pending-human-review queue:
// AI-processed candidates still waiting on a reviewer, oldest first.
type PendingReviewResponse struct {
	Candidates []domain.Candidate   `json:"candidates"`
	Summary    PendingReviewSummary `json:"summary"`
}

// PendingReviewSummary holds the scalar block of the pending-review queue.
type PendingReviewSummary struct {
	Total int `json:"total"`
	// AvgHoursSinceAIReview is the mean queue age in whole hours, 0 when
	// the queue is empty.
	AvgHoursSinceAIReview int `json:"avgHoursSinceAiReview"`
	// OldestHours is the age of the longest-waiting candidate, 0 when the
	// queue is empty.
	OldestHours int `json:"oldestHours"`
}

// AwaitingCandidate is a candidate in the CV-verification queue, extended
// with its age since entering the pipeline.
type AwaitingCandidate struct {
	domain.Candidate
	HoursSinceAdded *int `json:"hoursSinceAdded"`
}

// AwaitingReviewResponse is the payload of the CV-verification queue: every
// candidate not yet verified, best AI score first.
type AwaitingReviewResponse struct {
	Candidates []AwaitingCandidate   `json:"candidates"`
	Summary    AwaitingReviewSummary `json:"summary"`
}

// AwaitingReviewSummary holds the scalar block of the CV-verification queue.
type AwaitingReviewSummary struct {
	Total int `json:"total"`
	// AvgAIScore is the mean AI score across the queue, one decimal. Null
	// when no queued candidate has been scored.
	AvgAIScore *float64 `json:"avgAiScore"`
	// Unscored counts queued candidates without an AI score.
	Unscored int `json:"unscored"`
}

// PendingReview returns AI-processed candidates still waiting on human
// review, ordered oldest-processed first.
func (d *Dashboard) PendingReview(ctx context.Context) (*PendingReviewResponse, error) {
	pendingFilter := notion.And(
		notion.DateIsNotEmpty(normalize.PropAIProcessedAt),
		notion.DateIsEmpty(normalize.PropCVVerified),
		notion.CheckboxEquals(normalize.PropPassedHumanFilter, false),
		notion.SelectDoesNotEqual(normalize.PropStatus, domain.StatusCompanyRejected),
		notion.SelectDoesNotEqual(normalize.PropStatus, domain.StatusCandidateRejected),
	)
	sorts := []notion.Sort{{Property: normalize.PropAIProcessedAt, Direction: notion.SortAscending}}

	cands, _, err := d.fetch(ctx, pendingFilter, sorts)
	if err != nil {
		return nil, err
	}

	// Formula-backed properties bypass the remote filter, so the policy is
	// re-applied here over the normalized set.
	pending := filter.Apply(cands, filter.IsPendingHumanReview)
	sortOldestProcessedFirst(pending)

	summary := PendingReviewSummary{Total: len(pending)}
	if avg := aggregate.Average(pending, hoursSinceReview); avg != nil {
		summary.AvgHoursSinceAIReview = int(aggregate.RoundWhole(*avg))
	}
	for _, c := range pending {
		if c.HoursSinceAIReview != nil && *c.HoursSinceAIReview > summary.OldestHours {
			summary.OldestHours = *c.HoursSinceAIReview
		}
	}

	return &PendingReviewResponse{Candidates: pending, Summary: summary}, nil
}

// AwaitingReview returns every candidate whose CV has not been verified,
// ordered best AI score first so reviewers work the strongest profiles.
func (d *Dashboard) AwaitingReview(ctx context.Context) (*AwaitingReviewResponse, error) {
	cands, now, err := d.fetch(ctx, notion.DateIsEmpty(normalize.PropCVVerified), nil)
	if err != nil {
		return nil, err
	}

	queue := filter.Apply(cands, filter.IsAwaitingVerification)
	sortBestScoreFirst(queue)

	out := make([]AwaitingCandidate, len(queue))
	for i, c := range queue {
		out[i] = AwaitingCandidate{
			Candidate:       c,
			HoursSinceAdded: normalize.HoursSince(c.DateAdded, now),
		}
	}

	summary := AwaitingReviewSummary{
		Total: len(queue),
		Unscored: aggregate.Count(queue, func(c domain.Candidate) bool {
			return c.AIScore == nil
		}),
	}
	if avg := aggregate.Average(queue, aiScore); avg != nil {
		rounded := aggregate.Round1(*avg)
		summary.AvgAIScore = &rounded
	}

	return &AwaitingReviewResponse{Candidates: out, Summary: summary}, nil
}

// sortOldestProcessedFirst orders by AI-processed time ascending. Candidates
// whose timestamp fails to parse sort last; ties break by name.
func sortOldestProcessedFirst(cands []domain.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, aok := cands[i].AIProcessedTime()
		b, bok := cands[j].AIProcessedTime()
		switch {
		case aok && bok && !a.Equal(b):
			return a.Before(b)
		case aok != bok:
			return aok
		default:
			return cands[i].Name < cands[j].Name
		}
	})
}

// sortBestScoreFirst orders by AI score descending with unscored candidates
// last; ties break by name.
func sortBestScoreFirst(cands []domain.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i].AIScore, cands[j].AIScore
		switch {
		case a == nil && b == nil:
			return cands[i].Name < cands[j].Name
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		default:
			return cands[i].Name < cands[j].Name
		}
	})
}

func hoursSinceReview(c domain.Candidate) *float64 {
	if c.HoursSinceAIReview == nil {
		return nil
	}
	v := float64(*c.HoursSinceAIReview)
	return &v
}

func aiScore(c domain.Candidate) *float64 {
	return c.AIScore
}
