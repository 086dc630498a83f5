// Package service contains the response assemblers. Each endpoint follows
// the same three-phase shape: fetch and normalize the relevant record set,
// apply pipeline predicates, then run aggregators and bundle the outputs.
// Nothing is cached between requests; every call recomputes from a full
// fetch.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Brommah/hvc/internal/domain"
	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/normalize"
	"github.com/Brommah/hvc/internal/notion"
)

// Store is the candidate database boundary, satisfied by *notion.Client.
type Store interface {
	QueryDatabaseAll(ctx context.Context, databaseID string, filter notion.Filter, sorts []notion.Sort) ([]notion.Page, error)
}

// Dashboard assembles the dashboard views. One instance is constructed at
// process start with an injected store client; it holds no per-request
// state.
type Dashboard struct {
	store      Store
	databaseID string
	logger     logger.Logger
	now        func() time.Time
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithClock overrides the reference-time source. Used by tests to pin "now".
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDashboard creates the dashboard service.
func NewDashboard(store Store, databaseID string, log logger.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		store:      store,
		databaseID: databaseID,
		logger:     log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// fetch retrieves and normalizes the record set for one request. The
// reference time is captured once here so every derived field and bucket in
// the response agrees on "now".
func (d *Dashboard) fetch(ctx context.Context, f notion.Filter, sorts []notion.Sort) ([]domain.Candidate, time.Time, error) {
	now := d.now()

	pages, err := d.store.QueryDatabaseAll(ctx, d.databaseID, f, sorts)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("fetch candidates: %w", err)
	}

	cands := normalize.Candidates(pages, now)
	d.logger.Debug("candidate set loaded", logger.Int("records", len(cands)))

	return cands, now, nil
}
