package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestFormSubmitsOverHTTP(t *testing.T) {
	userID := uuid.New()
	reportID := uuid.New()
	var got dto.SubmitReportRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, reports.Report{
			ID: reportID, UserID: userID, Title: got.Title, Status: reports.StatusPending, CreatedAt: time.Now(),
		})
	}))
	defer srv.Close()

	form := reports.NewForm()
	form.SetTitle("  Cafeteria  ")
	form.SetDescription("Food thrown at me")
	form.SelectType(reports.TypeBullying)

	r, err := form.Submit(context.Background(), session.Session{UserID: userID}, New(srv.URL, "tok"))
	require.NoError(t, err)
	assert.Equal(t, reportID, r.ID)
	assert.Equal(t, "Cafeteria", got.Title)
	assert.Equal(t, "bullying", got.Type)
	assert.Equal(t, reports.Input{}, form.Input())
}

func TestServerFailureSurfacesAsSubmissionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{Error: true, Message: "Failed to submit report. Please try again."})
	}))
	defer srv.Close()

	form := reports.NewForm()
	form.SetTitle("Bus")
	form.SetDescription("Threats on the bus")
	form.SelectType(reports.TypeViolence)

	_, err := form.Submit(context.Background(), session.Session{UserID: uuid.New()}, New(srv.URL, "tok"))
	var se *reports.SubmissionError
	require.ErrorAs(t, err, &se)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Bus", form.Input().Title)
}

func TestFeedOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, dto.RecentReportsResponse{
			Limit: 3,
			Reports: []dto.ReportSummaryResponse{
				{ID: uuid.New(), Title: "Newest", Status: reports.StatusReviewed},
				{ID: uuid.New(), Title: "Older", Status: reports.StatusPending},
			},
		})
	}))
	defer srv.Close()

	feed := reports.NewFeed(New(srv.URL, "tok"), uuid.New(), 3, slog.New(slog.NewTextHandler(io.Discard, nil)))
	items := feed.Refresh(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "Newest", items[0].Title)
	assert.Equal(t, reports.StatusReviewed, items[0].Status)
}

func TestFeedDegradesWhenServerIsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{Error: true, Message: "Reports are temporarily unavailable"})
	}))
	defer srv.Close()

	feed := reports.NewFeed(New(srv.URL, "tok"), uuid.New(), 3, slog.New(slog.NewTextHandler(io.Discard, nil)))
	items := feed.Refresh(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.True(t, feed.Loaded())
}

func TestLoginStoresTokenForSession(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			writeJSON(w, http.StatusOK, dto.AuthResponse{AccessToken: "fresh", User: dto.UserResponse{ID: userID}})
		case "/api/profile":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: true, Message: "Unauthorized"})
				return
			}
			writeJSON(w, http.StatusOK, dto.ProfileResponse{ID: userID, Email: "sam@lincoln.edu", School: "Lincoln High"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "")
	_, err := c.Session(context.Background())
	assert.ErrorIs(t, err, session.ErrUnauthenticated)

	_, err = c.Login(context.Background(), dto.LoginRequest{Email: "sam@lincoln.edu", Password: "secret123"})
	require.NoError(t, err)

	sess, err := c.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, "Lincoln High", sess.School)

	c.SetToken("stale")
	_, err = c.Session(context.Background())
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(errors.New("other")))
}
