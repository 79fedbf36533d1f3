// Package client talks to the StudentSafe API over HTTP. Client satisfies
// reports.Gateway so the report Form and Feed run unchanged on the client
// side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
	"github.com/google/uuid"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken replaces the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

var _ reports.Gateway = (*Client)(nil)

// InsertReport posts the report and copies the stored ID, status and
// creation time back into r.
func (c *Client) InsertReport(ctx context.Context, r *reports.Report) error {
	req := dto.SubmitReportRequest{
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
	}
	var stored reports.Report
	if err := c.do(ctx, http.MethodPost, "/api/reports", req, &stored); err != nil {
		return err
	}
	r.ID = stored.ID
	r.Status = stored.Status
	r.CreatedAt = stored.CreatedAt
	return nil
}

// SelectRecentReports lists the token owner's newest reports. The server
// scopes by token; userID is only checked against the session.
func (c *Client) SelectRecentReports(ctx context.Context, userID uuid.UUID, limit int) ([]reports.Summary, error) {
	if userID == uuid.Nil {
		return nil, session.ErrUnauthenticated
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp dto.RecentReportsResponse
	if err := c.do(ctx, http.MethodGet, "/api/reports/recent?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]reports.Summary, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		out = append(out, reports.Summary{ID: r.ID, Title: r.Title, Status: r.Status, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp, nil
}

func (c *Client) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var resp dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Session resolves the current token into the session the report flows
// need.
func (c *Client) Session(ctx context.Context) (session.Session, error) {
	if c.token == "" {
		return session.Session{}, session.ErrUnauthenticated
	}
	p, err := c.Profile(ctx)
	if err != nil {
		return session.Session{}, err
	}
	return session.Session{UserID: p.ID, Email: p.Email, School: p.School}, nil
}

func (c *Client) Types(ctx context.Context) ([]reports.TypeInfo, error) {
	var resp struct {
		Types []reports.TypeInfo `json:"types"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reports/types", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Types, nil
}

func (c *Client) Resources(ctx context.Context) (*dto.ResourcesResponse, error) {
	var resp dto.ResourcesResponse
	if err := c.do(ctx, http.MethodGet, "/api/resources", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Message = e.Message
			apiErr.Field = e.Field
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
