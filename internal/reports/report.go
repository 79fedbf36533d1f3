package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

type Report struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the subset of a report shown in the recent reports list.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Input holds the user-entered form fields.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        Type   `json:"type"`
}

// Gateway is the table store the report flows read from and write to.
// InsertReport assigns ID and CreatedAt on the passed report.
type Gateway interface {
	InsertReport(ctx context.Context, r *Report) error
	SelectRecentReports(ctx context.Context, userID uuid.UUID, limit int) ([]Summary, error)
}
