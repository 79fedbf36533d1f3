package reports

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
)

// Submit validates the input, then issues exactly one insert owned by the
// session's user. Validation failures never reach the gateway.
func Submit(ctx context.Context, sess session.Session, gw Gateway, in Input) (*Report, error) {
	r, err := build(sess, in)
	if err != nil {
		return nil, err
	}
	if err := insert(ctx, gw, r); err != nil {
		return nil, err
	}
	return r, nil
}

func build(sess session.Session, in Input) (*Report, error) {
	if !sess.Authenticated() {
		return nil, &ValidationError{Field: "user_id", Reason: "authentication required"}
	}
	clean, err := Normalize(in)
	if err != nil {
		return nil, err
	}
	return &Report{
		UserID:      sess.UserID,
		Title:       clean.Title,
		Description: clean.Description,
		Type:        clean.Type,
		Status:      StatusPending,
	}, nil
}

func insert(ctx context.Context, gw Gateway, r *Report) error {
	if err := gw.InsertReport(ctx, r); err != nil {
		return &SubmissionError{Cause: err}
	}
	return nil
}
