package reports

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Feed is the recent reports list of one user. Fetch failures degrade to
// an empty list and are logged. A fetch that completes after a newer one
// has already been applied is discarded.
type Feed struct {
	gw     Gateway
	userID uuid.UUID
	limit  int
	logger *slog.Logger

	mu      sync.Mutex
	started uint64
	applied uint64
	items   []Summary
	loaded  bool
}

func NewFeed(gw Gateway, userID uuid.UUID, limit int, logger *slog.Logger) *Feed {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{gw: gw, userID: userID, limit: limit, logger: logger, items: []Summary{}}
}

// Refresh fetches the list and returns whatever the feed holds afterwards.
func (f *Feed) Refresh(ctx context.Context) []Summary {
	f.mu.Lock()
	f.started++
	seq := f.started
	f.mu.Unlock()

	items, err := FetchRecent(ctx, f.gw, f.userID, f.limit)
	if err != nil {
		f.logger.Error("failed to fetch recent reports",
			"action", "fetch_recent_reports",
			"user_id", f.userID.String(),
			"error", err.Error(),
		)
		items = []Summary{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq > f.applied {
		f.applied = seq
		f.items = items
		f.loaded = true
	}
	return f.snapshot()
}

func (f *Feed) Items() []Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Feed) snapshot() []Summary {
	out := make([]Summary, len(f.items))
	copy(out, f.items)
	return out
}

// Loaded reports whether any fetch has completed.
func (f *Feed) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}
