package reports

import (
	"context"

	"github.com/google/uuid"
)

// DefaultRecentLimit is how many reports the home screen summary shows.
const DefaultRecentLimit = 3

// FetchRecent returns the user's newest reports, most recent first, at most
// limit of them. No reports is an empty slice, not an error.
func FetchRecent(ctx context.Context, gw Gateway, userID uuid.UUID, limit int) ([]Summary, error) {
	if userID == uuid.Nil {
		return nil, &ValidationError{Field: "user_id", Reason: "authentication required"}
	}
	if limit <= 0 {
		return nil, &ValidationError{Field: "limit", Reason: "must be positive"}
	}

	items, err := gw.SelectRecentReports(ctx, userID, limit)
	if err != nil {
		return nil, &RetrievalError{Cause: err}
	}
	if items == nil {
		items = []Summary{}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
