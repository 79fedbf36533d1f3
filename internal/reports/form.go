package reports

import (
	"context"
	"sync"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
)

// FormState is the lifecycle of a single report form instance.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	}
	return "unknown"
}

// Form holds the fields of one report form and guards it against
// re-entrant submission. Succeeded and failed are pass-through states:
// Submit always leaves the form idle, cleared on success and untouched on
// failure.
type Form struct {
	mu           sync.Mutex
	state        FormState
	input        Input
	onTransition func(from, to FormState)
}

func NewForm() *Form {
	return &Form{}
}

// OnTransition registers fn to observe state changes. fn runs outside the
// form's lock.
func (f *Form) OnTransition(fn func(from, to FormState)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onTransition = fn
}

func (f *Form) SetTitle(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Title = title
}

func (f *Form) SetDescription(description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Description = description
}

func (f *Form) SelectType(t Type) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Type = t
}

func (f *Form) Input() Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit sends the current fields through the submission flow. A second
// call while one is in flight returns ErrSubmitInProgress.
func (f *Form) Submit(ctx context.Context, sess session.Session, gw Gateway) (*Report, error) {
	f.mu.Lock()
	if f.state != FormIdle {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	r, err := build(sess, f.input)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.state = FormSubmitting
	notify := f.onTransition
	f.mu.Unlock()
	fire(notify, FormIdle, FormSubmitting)

	err = insert(ctx, gw, r)

	f.mu.Lock()
	outcome := FormSucceeded
	if err != nil {
		outcome = FormFailed
	} else {
		f.input = Input{}
	}
	f.state = FormIdle
	notify = f.onTransition
	f.mu.Unlock()

	fire(notify, FormSubmitting, outcome)
	fire(notify, outcome, FormIdle)

	if err != nil {
		return nil, err
	}
	return r, nil
}

func fire(fn func(from, to FormState), from, to FormState) {
	if fn != nil {
		fn(from, to)
	}
}
