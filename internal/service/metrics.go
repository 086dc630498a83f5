package service

import (
	"context"

	"github.com/Brommah/hvc/internal/aggregate"
	"github.com/Brommah/hvc/internal/domain"
	"github.com/Brommah/hvc/internal/filter"
)

// TrailingWindowDays is the length of every daily time series in the
// executive bundle, today inclusive.
const TrailingWindowDays = 30

// CEOMetricsResponse is the executive bundle: every chart and scalar the
// overview dashboard renders, computed from one fetch so all sections agree
// on the same snapshot.
type CEOMetricsResponse struct {
	NewCandidatesPerDay []aggregate.DayBucket `json:"newCandidatesPerDay"`
	AIProcessedPerDay   []aggregate.DayBucket `json:"aiProcessedPerDay"`

	// AvgAIScorePerDay tracks the AI-score quality of each day's intake
	// cohort, keyed by the day the candidate was added.
	AvgAIScorePerDay []aggregate.AvgBucket `json:"avgAiScorePerDay"`

	CandidatesPerWeek  []aggregate.WeekBucket   `json:"candidatesPerWeek"`
	StatusBreakdown    []aggregate.CategoryStat `json:"statusBreakdown"`
	RoleBreakdown      []aggregate.CategoryStat `json:"roleBreakdown"`
	ReviewBacklogTrend []aggregate.DayBucket    `json:"reviewBacklogTrend"`
	Summary            CEOSummary               `json:"summary"`
}

// CEOSummary holds the scalar block of the executive bundle.
type CEOSummary struct {
	TotalCandidates     int `json:"totalCandidates"`
	HighValueCandidates int `json:"highValueCandidates"`
	OverdueHighValue    int `json:"overdueHighValue"`
	HotCandidates       int `json:"hotCandidates"`
	PendingHumanReview  int `json:"pendingHumanReview"`
	// AvgHoursSinceAIReview is the mean review-queue age in whole hours,
	// 0 when nothing is queued.
	AvgHoursSinceAIReview int `json:"avgHoursSinceAiReview"`
	// HumanReviewRate is the whole percentage of AI-processed candidates a
	// human has passed.
	HumanReviewRate int `json:"humanReviewRate"`
	// InterviewRate is the whole percentage of all candidates that reached
	// any interview stage.
	InterviewRate int `json:"interviewRate"`
	// AvgScoreDelta is the mean of humanScore-aiScore across candidates
	// carrying both, one decimal. Null when no candidate has both scores.
	AvgScoreDelta *float64 `json:"avgScoreDelta"`
}

// CEOMetrics fetches the whole candidate database and computes the executive
// bundle. Trends cover the trailing 30 days; breakdowns and scalars cover
// the full set.
func (d *Dashboard) CEOMetrics(ctx context.Context) (*CEOMetricsResponse, error) {
	cands, now, err := d.fetch(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	addedAt := domain.Candidate.AddedAt
	processedAt := domain.Candidate.AIProcessedTime

	highValue := filter.Apply(cands, filter.IsHighValue)
	pending := filter.Apply(cands, filter.IsPendingHumanReview)
	aiProcessed := filter.Apply(cands, func(c domain.Candidate) bool {
		return c.AIProcessedAt != nil
	})

	backlogPerDay := aggregate.CountByDay(pending, processedAt, TrailingWindowDays, now)

	resp := &CEOMetricsResponse{
		NewCandidatesPerDay: aggregate.CountByDay(cands, addedAt, TrailingWindowDays, now),
		AIProcessedPerDay:   aggregate.CountByDay(cands, processedAt, TrailingWindowDays, now),
		AvgAIScorePerDay:    aggregate.AverageByDay(cands, addedAt, aiScore, TrailingWindowDays, now),
		CandidatesPerWeek:   aggregate.CountByWeek(cands, addedAt),
		StatusBreakdown:     statusBreakdown(cands),
		RoleBreakdown:       aggregate.GroupBy(cands, role),
		ReviewBacklogTrend:  aggregate.Cumulative(backlogPerDay),
		Summary: CEOSummary{
			TotalCandidates:     len(cands),
			HighValueCandidates: len(highValue),
			OverdueHighValue:    len(filter.Apply(highValue, filter.IsActive, filter.IsOverdue)),
			HotCandidates: aggregate.Count(cands, func(c domain.Candidate) bool {
				return c.HotCandidate
			}),
			PendingHumanReview: len(pending),
			HumanReviewRate: aggregate.Rate(
				aggregate.Count(aiProcessed, func(c domain.Candidate) bool {
					return c.PassedHumanFilter
				}),
				len(aiProcessed),
			),
			InterviewRate: aggregate.Rate(
				aggregate.Count(cands, filter.HasReachedInterview),
				len(cands),
			),
		},
	}

	if avg := aggregate.Average(pending, hoursSinceReview); avg != nil {
		resp.Summary.AvgHoursSinceAIReview = int(aggregate.RoundWhole(*avg))
	}
	if avg := aggregate.Average(cands, scoreDelta); avg != nil {
		rounded := aggregate.Round1(*avg)
		resp.Summary.AvgScoreDelta = &rounded
	}

	return resp, nil
}

// statusBreakdown groups by pipeline status and averages dwell time within
// each, worst bottleneck first.
func statusBreakdown(cands []domain.Candidate) []aggregate.CategoryStat {
	stats := aggregate.GroupByAverage(cands, status, hoursSinceActivity, aggregate.RoundWhole)
	aggregate.SortByAverageDesc(stats)
	return stats
}

func status(c domain.Candidate) *string { return c.Status }

func role(c domain.Candidate) *string { return c.Role }

func hoursSinceActivity(c domain.Candidate) *float64 { return c.HoursSinceLastActivity }

// scoreDelta is humanScore-aiScore, defined only when both scores exist.
func scoreDelta(c domain.Candidate) *float64 {
	if c.HumanScore == nil || c.AIScore == nil {
		return nil
	}
	delta := *c.HumanScore - *c.AIScore
	return &delta
}
