package reports

import (
	"errors"
	"fmt"
)

var ErrSubmitInProgress = errors.New("a submission is already in progress for this form")

// ValidationError is returned before any gateway call when an input field
// is missing or out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SubmissionError wraps a gateway failure during insert. The caller keeps
// the user's input and may resubmit.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return "failed to submit report: " + e.Cause.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Cause }

// RetrievalError wraps a gateway failure during a read.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return "failed to fetch reports: " + e.Cause.Error()
}

func (e *RetrievalError) Unwrap() error { return e.Cause }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
