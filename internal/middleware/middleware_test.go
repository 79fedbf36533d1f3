package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func status(t *testing.T, app *fiber.App, header, value string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTProtected(t *testing.T) {
	cfg := &config.Config{JWTSecret: "mw-secret"}
	app := fiber.New()
	app.Get("/", JWTProtected(cfg), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	exp := time.Now().Add(time.Minute).Unix()
	valid := sign(t, "mw-secret", jwt.MapClaims{"sub": uuid.NewString(), "exp": exp})
	badSub := sign(t, "mw-secret", jwt.MapClaims{"sub": "not-a-user", "exp": exp})
	wrongKey := sign(t, "other", jwt.MapClaims{"sub": uuid.NewString(), "exp": exp})
	expired := sign(t, "mw-secret", jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Minute).Unix()})

	assert.Equal(t, http.StatusOK, status(t, app, "Authorization", "Bearer "+valid))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, "Authorization", "Bearer "+badSub))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, "Authorization", "Bearer "+wrongKey))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, "Authorization", "Bearer "+expired))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, "", ""))
}

func TestAdminRequiredAcceptsAdminToken(t *testing.T) {
	cfg := &config.Config{AdminToken: "staff-token"}
	app := fiber.New()
	app.Get("/", AdminRequired(nil, cfg), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	assert.Equal(t, http.StatusOK, status(t, app, "X-Admin-Token", "staff-token"))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, "X-Admin-Token", "guess"))
}

func TestParseCSV(t *testing.T) {
	assert.Equal(t, []string{"a@x.edu", "b@x.edu"}, parseCSV(" a@x.edu, ,b@x.edu "))
	assert.Nil(t, parseCSV(""))
	assert.True(t, contains([]string{"Counselor@X.edu"}, "counselor@x.edu"))
}
