package reports

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("connection refused")

// memGateway is an in-memory Gateway used across the package tests.
type memGateway struct {
	mu        sync.Mutex
	rows      []Report
	inserts   int
	selects   int
	insertErr error
	selectErr error
	clock     time.Time
}

func newMemGateway() *memGateway {
	return &memGateway{clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (g *memGateway) InsertReport(_ context.Context, r *Report) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inserts++
	if g.insertErr != nil {
		return g.insertErr
	}
	r.ID = uuid.New()
	if r.CreatedAt.IsZero() {
		g.clock = g.clock.Add(time.Minute)
		r.CreatedAt = g.clock
	}
	g.rows = append(g.rows, *r)
	return nil
}

func (g *memGateway) SelectRecentReports(_ context.Context, userID uuid.UUID, limit int) ([]Summary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selects++
	if g.selectErr != nil {
		return nil, g.selectErr
	}

	var owned []Report
	for _, r := range g.rows {
		if r.UserID == userID {
			owned = append(owned, r)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	if len(owned) > limit {
		owned = owned[:limit]
	}

	out := make([]Summary, 0, len(owned))
	for _, r := range owned {
		out = append(out, Summary{ID: r.ID, Title: r.Title, Status: r.Status, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

func (g *memGateway) lastInserted() Report {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows[len(g.rows)-1]
}

// funcGateway delegates to per-test functions.
type funcGateway struct {
	mu       sync.Mutex
	calls    int
	insertFn func(ctx context.Context, r *Report) error
	selectFn func(call int) ([]Summary, error)
}

func (g *funcGateway) InsertReport(ctx context.Context, r *Report) error {
	return g.insertFn(ctx, r)
}

func (g *funcGateway) SelectRecentReports(_ context.Context, _ uuid.UUID, _ int) ([]Summary, error) {
	g.mu.Lock()
	g.calls++
	call := g.calls
	g.mu.Unlock()
	return g.selectFn(call)
}
