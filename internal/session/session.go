// Package session carries the authenticated caller explicitly instead of
// reading identity from ambient state.
package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrUnauthenticated = errors.New("no authenticated user")

// Session is the identity of the current user as asserted by a verified
// access token.
type Session struct {
	UserID uuid.UUID
	Email  string
	School string
}

func (s Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}

// FromClaims builds a Session from access token claims.
func FromClaims(claims jwt.MapClaims) (Session, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Session{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Session{}, err
	}

	email, _ := claims["email"].(string)
	school, _ := claims["school"].(string)
	return Session{UserID: id, Email: email, School: school}, nil
}

// FromContext extracts the session from the JWT placed in Fiber locals by
// the auth middleware.
func FromContext(c *fiber.Ctx) (Session, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Session{}, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errors.New("invalid claims")
	}
	return FromClaims(claims)
}
