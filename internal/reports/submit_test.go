package reports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentSession() session.Session {
	return session.Session{UserID: uuid.New(), Email: "sam@school.edu", School: "Lincoln High"}
}

func TestSubmitRejectsBlankFieldsWithoutCallingGateway(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"blank title", Input{Title: "   \t", Description: "Someone broke my locker", Type: TypeBullying}, "title"},
		{"empty title", Input{Title: "", Description: "Someone broke my locker", Type: TypeBullying}, "title"},
		{"blank description", Input{Title: "Locker incident", Description: "\n  \n", Type: TypeBullying}, "description"},
		{"missing type", Input{Title: "Locker incident", Description: "Someone broke my locker"}, "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newMemGateway()
			_, err := Submit(context.Background(), studentSession(), gw, tc.in)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Zero(t, gw.inserts)
		})
	}
}

func TestSubmitRejectsUnknownTypes(t *testing.T) {
	for _, raw := range []string{"theft", "Bullying", "BULLYING", " other", "spam"} {
		gw := newMemGateway()
		_, err := Submit(context.Background(), studentSession(), gw, Input{
			Title:       "Locker incident",
			Description: "Someone broke my locker",
			Type:        Type(raw),
		})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve, raw)
		assert.Equal(t, "type", ve.Field)
		assert.Zero(t, gw.inserts)
	}
}

func TestSubmitRejectsOverlongFields(t *testing.T) {
	gw := newMemGateway()
	_, err := Submit(context.Background(), studentSession(), gw, Input{
		Title:       strings.Repeat("a", MaxTitleLength+1),
		Description: "ok",
		Type:        TypeOther,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	_, err = Submit(context.Background(), studentSession(), gw, Input{
		Title:       "ok",
		Description: strings.Repeat("d", MaxDescriptionLength+1),
		Type:        TypeOther,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)
	assert.Zero(t, gw.inserts)
}

func TestSubmitCountsCharactersNotBytes(t *testing.T) {
	gw := newMemGateway()
	_, err := Submit(context.Background(), studentSession(), gw, Input{
		Title:       strings.Repeat("é", MaxTitleLength),
		Description: "accents",
		Type:        TypeOther,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.inserts)
}

func TestSubmitRequiresAuthenticatedSession(t *testing.T) {
	gw := newMemGateway()
	_, err := Submit(context.Background(), session.Session{}, gw, Input{
		Title:       "Locker incident",
		Description: "Someone broke my locker",
		Type:        TypeBullying,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)
	assert.Zero(t, gw.inserts)
}

func TestSubmitInsertsPendingTrimmedReport(t *testing.T) {
	gw := newMemGateway()
	sess := studentSession()

	r, err := Submit(context.Background(), sess, gw, Input{
		Title:       "  Locker incident ",
		Description: "\tSomeone broke my locker\n",
		Type:        TypeBullying,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.inserts)

	stored := gw.lastInserted()
	assert.Equal(t, sess.UserID, stored.UserID)
	assert.Equal(t, "Locker incident", stored.Title)
	assert.Equal(t, "Someone broke my locker", stored.Description)
	assert.Equal(t, TypeBullying, stored.Type)
	assert.Equal(t, StatusPending, stored.Status)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestSubmitWrapsGatewayFailure(t *testing.T) {
	gw := newMemGateway()
	gw.insertErr = errStoreDown

	_, err := Submit(context.Background(), studentSession(), gw, Input{
		Title:       "Locker incident",
		Description: "Someone broke my locker",
		Type:        TypeBullying,
	})

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.True(t, errors.Is(err, errStoreDown))
	assert.False(t, IsValidation(err))
	assert.Equal(t, 1, gw.inserts)
}
