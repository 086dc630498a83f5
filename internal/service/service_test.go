package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/normalize"
	"github.com/Brommah/hvc/internal/notion"
	"github.com/Brommah/hvc/internal/service"
)

const testDatabaseID = "db-test"

// reference time for every test: a Sunday at noon UTC.
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// stubStore serves a canned page set and records the filter it was queried
// with.
type stubStore struct {
	pages      []notion.Page
	err        error
	lastFilter notion.Filter
	lastSorts  []notion.Sort
}

func (s *stubStore) QueryDatabaseAll(_ context.Context, _ string, f notion.Filter, sorts []notion.Sort) ([]notion.Page, error) {
	s.lastFilter = f
	s.lastSorts = sorts
	if s.err != nil {
		return nil, s.err
	}
	return s.pages, nil
}

func newDashboard(store *stubStore) *service.Dashboard {
	return service.NewDashboard(store, testDatabaseID, logger.NewNop(),
		service.WithClock(func() time.Time { return testNow }))
}

type pageSpec struct {
	id       string
	name     string
	role     string
	status   string
	priority string
	hot      bool

	hoursSinceActivity *float64
	aiScore            *float64
	humanScore         *float64

	dateAdded     string
	aiProcessedAt string
	cvVerifiedAt  string
	passedHuman   bool
}

func buildPage(spec pageSpec) notion.Page {
	props := map[string]notion.Property{
		normalize.PropName: {Type: "title", Title: []notion.RichText{{PlainText: spec.name}}},
	}
	setSelect := func(key, value string) {
		if value != "" {
			props[key] = notion.Property{Type: "select", Select: &notion.SelectOption{Name: value}}
		}
	}
	setDate := func(key, value string) {
		if value != "" {
			props[key] = notion.Property{Type: "date", Date: &notion.DateValue{Start: value}}
		}
	}
	setNumber := func(key string, value *float64) {
		if value != nil {
			props[key] = notion.Property{Type: "number", Number: value}
		}
	}

	setSelect(normalize.PropRole, spec.role)
	setSelect(normalize.PropStatus, spec.status)
	setSelect(normalize.PropPriority, spec.priority)
	if spec.hot {
		setSelect(normalize.PropHot, "🔥 Hot Candidate")
	}
	setNumber(normalize.PropHoursSinceActivity, spec.hoursSinceActivity)
	setNumber(normalize.PropAIScore, spec.aiScore)
	setNumber(normalize.PropHumanScore, spec.humanScore)
	setDate(normalize.PropDateAdded, spec.dateAdded)
	setDate(normalize.PropAIProcessedAt, spec.aiProcessedAt)
	setDate(normalize.PropCVVerified, spec.cvVerifiedAt)
	passed := spec.passedHuman
	props[normalize.PropPassedHumanFilter] = notion.Property{Type: "checkbox", Checkbox: &passed}

	return notion.Page{ID: spec.id, Properties: props, CreatedTime: "2026-03-01T00:00:00Z"}
}

func fptr(v float64) *float64 { return &v }

func TestOverdueCandidates(t *testing.T) {
	store := &stubStore{pages: []notion.Page{
		buildPage(pageSpec{id: "1", name: "Recently Active", hot: true, hoursSinceActivity: fptr(10)}),
		buildPage(pageSpec{id: "2", name: "Never Tracked", hot: true}),
		buildPage(pageSpec{id: "3", name: "Stale Ordinary", hoursSinceActivity: fptr(30)}),
		buildPage(pageSpec{id: "4", name: "Stale Priority", priority: "1st", hoursSinceActivity: fptr(72)}),
	}}

	resp, err := newDashboard(store).OverdueCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, "Never Tracked", resp.Candidates[0].Name, "untracked sorts first")
	assert.Equal(t, "Stale Priority", resp.Candidates[1].Name)

	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Hot)
	assert.Equal(t, 1, resp.Summary.NoActivityTracking)

	// Terminal statuses are excluded at the store.
	require.NotNil(t, store.lastFilter)
	assert.Contains(t, store.lastFilter, "and")
}

func TestOverdueCandidates_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("store unavailable")}

	_, err := newDashboard(store).OverdueCandidates(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
}

func TestPendingReview(t *testing.T) {
	store := &stubStore{pages: []notion.Page{
		buildPage(pageSpec{id: "1", name: "Old", aiProcessedAt: "2026-03-10T12:00:00Z"}),
		buildPage(pageSpec{id: "2", name: "New", aiProcessedAt: "2026-03-14T12:00:00Z"}),
		// Already verified: the store filter should exclude it, but the
		// policy also drops it if it slips through.
		buildPage(pageSpec{id: "3", name: "Verified", aiProcessedAt: "2026-03-12", cvVerifiedAt: "2026-03-13"}),
	}}

	resp, err := newDashboard(store).PendingReview(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, "Old", resp.Candidates[0].Name, "oldest processed first")
	assert.Equal(t, "New", resp.Candidates[1].Name)

	// Old waited 120h, New 24h.
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 72, resp.Summary.AvgHoursSinceAIReview)
	assert.Equal(t, 120, resp.Summary.OldestHours)

	require.Len(t, store.lastSorts, 1)
	assert.Equal(t, notion.SortAscending, store.lastSorts[0].Direction)
}

func TestAwaitingReview(t *testing.T) {
	store := &stubStore{pages: []notion.Page{
		buildPage(pageSpec{id: "1", name: "Mid Score", aiScore: fptr(6), dateAdded: "2026-03-14T12:00:00Z"}),
		buildPage(pageSpec{id: "2", name: "Top Score", aiScore: fptr(9.25)}),
		buildPage(pageSpec{id: "3", name: "Unscored"}),
	}}

	resp, err := newDashboard(store).AwaitingReview(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Candidates, 3)
	assert.Equal(t, "Top Score", resp.Candidates[0].Name)
	assert.Equal(t, "Mid Score", resp.Candidates[1].Name)
	assert.Equal(t, "Unscored", resp.Candidates[2].Name, "unscored sorts last")

	require.NotNil(t, resp.Candidates[1].HoursSinceAdded)
	assert.Equal(t, 24, *resp.Candidates[1].HoursSinceAdded)

	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Unscored)
	require.NotNil(t, resp.Summary.AvgAIScore)
	assert.InDelta(t, 7.6, *resp.Summary.AvgAIScore, 0.0001)
}

func TestCEOMetrics(t *testing.T) {
	store := &stubStore{pages: []notion.Page{
		buildPage(pageSpec{
			id: "1", name: "Hot Eng", role: "Engineer", status: "Screening", hot: true,
			aiScore: fptr(8), humanScore: fptr(7), hoursSinceActivity: fptr(48),
			dateAdded: "2026-03-14", aiProcessedAt: "2026-03-14T12:00:00Z", passedHuman: true,
		}),
		buildPage(pageSpec{
			id: "2", name: "Designer", role: "Designer", status: "Applied",
			aiScore: fptr(6), dateAdded: "2026-03-15",
			aiProcessedAt: "2026-03-15T00:00:00Z",
		}),
		buildPage(pageSpec{
			id: "3", name: "Ancient", role: "Engineer", status: "Applied",
			dateAdded: "2025-12-01",
		}),
	}}

	resp, err := newDashboard(store).CEOMetrics(context.Background())

	require.NoError(t, err)
	assert.Nil(t, store.lastFilter, "executive bundle fetches the whole database")

	require.Len(t, resp.NewCandidatesPerDay, 30)
	last := resp.NewCandidatesPerDay[29]
	assert.Equal(t, "2026-03-15", last.Date)
	assert.Equal(t, 1, last.Count)

	require.Len(t, resp.AIProcessedPerDay, 30)

	// Intake quality is keyed by the day the candidate was added.
	require.Len(t, resp.AvgAIScorePerDay, 30)
	lastAvg := resp.AvgAIScorePerDay[29]
	require.NotNil(t, lastAvg.Average)
	assert.InDelta(t, 6.0, *lastAvg.Average, 0.0001)
	assert.Nil(t, resp.AvgAIScorePerDay[28-7].Average, "day without scored intake is null")

	// 2026-03-14 is a Saturday, 2026-03-15 a Sunday: same Monday-start week.
	weekCounts := map[string]int{}
	for _, w := range resp.CandidatesPerWeek {
		weekCounts[w.WeekStart] = w.Count
	}
	assert.Equal(t, 2, weekCounts["2026-03-09"])
	assert.Equal(t, 1, weekCounts["2025-12-01"])

	// Status with the worst dwell time leads.
	require.NotEmpty(t, resp.StatusBreakdown)
	assert.Equal(t, "Screening", resp.StatusBreakdown[0].Label)

	roleLabels := make([]string, len(resp.RoleBreakdown))
	for i, r := range resp.RoleBreakdown {
		roleLabels[i] = r.Label
	}
	assert.Equal(t, []string{"Designer", "Engineer"}, roleLabels)

	// Only the unreviewed processed candidate contributes to the backlog.
	require.Len(t, resp.ReviewBacklogTrend, 30)
	assert.Equal(t, 1, resp.ReviewBacklogTrend[29].Count)

	sum := resp.Summary
	assert.Equal(t, 3, sum.TotalCandidates)
	assert.Equal(t, 1, sum.HighValueCandidates)
	assert.Equal(t, 1, sum.HotCandidates)
	assert.Equal(t, 1, sum.PendingHumanReview)
	assert.Equal(t, 12, sum.AvgHoursSinceAIReview)
	assert.Equal(t, 50, sum.HumanReviewRate, "1 of 2 processed passed")
	assert.Equal(t, 0, sum.InterviewRate)
	require.NotNil(t, sum.AvgScoreDelta)
	assert.InDelta(t, -1.0, *sum.AvgScoreDelta, 0.0001)
}

func TestCEOMetrics_EmptyDatabase(t *testing.T) {
	store := &stubStore{}

	resp, err := newDashboard(store).CEOMetrics(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.NewCandidatesPerDay, 30, "window is gap-filled even with no data")
	assert.Empty(t, resp.CandidatesPerWeek)
	assert.Empty(t, resp.StatusBreakdown)
	assert.Equal(t, 0, resp.Summary.TotalCandidates)
	assert.Equal(t, 0, resp.Summary.HumanReviewRate)
	assert.Nil(t, resp.Summary.AvgScoreDelta)
}
