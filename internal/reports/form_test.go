package reports

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillForm(f *Form) {
	f.SetTitle("Locker incident")
	f.SetDescription("Someone broke my locker")
	f.SelectType(TypeBullying)
}

func TestFormSuccessClearsInput(t *testing.T) {
	gw := newMemGateway()
	f := NewForm()
	fillForm(f)

	var mu sync.Mutex
	var seen []string
	f.OnTransition(func(from, to FormState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, from.String()+"->"+to.String())
	})

	_, err := f.Submit(context.Background(), studentSession(), gw)
	require.NoError(t, err)

	assert.Equal(t, Input{}, f.Input())
	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, []string{"idle->submitting", "submitting->succeeded", "succeeded->idle"}, seen)
}

func TestFormFailurePreservesInput(t *testing.T) {
	gw := newMemGateway()
	gw.insertErr = errStoreDown
	f := NewForm()
	f.SetTitle("  Locker incident  ")
	f.SetDescription("Someone broke my locker")
	f.SelectType(TypeBullying)
	before := f.Input()

	var seen []FormState
	f.OnTransition(func(_, to FormState) { seen = append(seen, to) })

	_, err := f.Submit(context.Background(), studentSession(), gw)

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, before, f.Input())
	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, []FormState{FormSubmitting, FormFailed, FormIdle}, seen)
}

func TestFormValidationLeavesStateAndInputAlone(t *testing.T) {
	gw := newMemGateway()
	f := NewForm()
	f.SetTitle("   ")
	f.SetDescription("Someone broke my locker")
	f.SelectType(TypeViolence)
	before := f.Input()

	transitions := 0
	f.OnTransition(func(_, _ FormState) { transitions++ })

	_, err := f.Submit(context.Background(), studentSession(), gw)
	assert.True(t, IsValidation(err))
	assert.Equal(t, before, f.Input())
	assert.Equal(t, FormIdle, f.State())
	assert.Zero(t, transitions)
	assert.Zero(t, gw.inserts)
}

func TestFormRejectsReentrantSubmit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mem := newMemGateway()
	gw := &funcGateway{insertFn: func(ctx context.Context, r *Report) error {
		close(started)
		<-release
		return mem.InsertReport(ctx, r)
	}}

	f := NewForm()
	fillForm(f)
	sess := studentSession()

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), sess, gw)
		done <- err
	}()

	<-started
	assert.Equal(t, FormSubmitting, f.State())

	_, err := f.Submit(context.Background(), sess, gw)
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, mem.inserts)
	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, Input{}, f.Input())
}

func TestFormCanResubmitAfterFailure(t *testing.T) {
	gw := newMemGateway()
	gw.insertErr = errStoreDown
	f := NewForm()
	fillForm(f)
	sess := studentSession()

	_, err := f.Submit(context.Background(), sess, gw)
	require.Error(t, err)

	gw.insertErr = nil
	r, err := f.Submit(context.Background(), sess, gw)
	require.NoError(t, err)
	assert.Equal(t, "Locker incident", r.Title)
	assert.Equal(t, 2, gw.inserts)
}

func TestFormStateString(t *testing.T) {
	assert.Equal(t, "idle", FormIdle.String())
	assert.Equal(t, "submitting", FormSubmitting.String())
	assert.Equal(t, "succeeded", FormSucceeded.String())
	assert.Equal(t, "failed", FormFailed.String())
	assert.Equal(t, "unknown", FormState(42).String())
}
