package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/meditrack/console/internal/policy"
)

// Identity is the signed-in operator as returned by the hospital API's
// login endpoint.
type Identity struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       policy.Role `json:"role"`
	Department string      `json:"department,omitempty"`
	Shift      string      `json:"shift,omitempty"`
}

// Session binds a console session ID to an operator identity and the
// hospital API bearer token obtained at login. The token never leaves the
// server; the browser only holds the opaque session cookie.
type Session struct {
	ID        string    `json:"id"`
	User      Identity  `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New creates a session for user valid for at most ttl. When the bearer
// token carries an exp claim that is sooner, the session expires with the
// token: a session that outlives its token would only produce 401s.
func New(user Identity, token string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	if exp := tokenExpiry(token); !exp.IsZero() && exp.Before(expiresAt) {
		expiresAt = exp
	}

	return &Session{
		ID:        uuid.NewString(),
		User:      user,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// TTL returns the remaining lifetime of the session.
func (s *Session) TTL() time.Duration {
	return time.Until(s.ExpiresAt)
}

// tokenExpiry reads the exp claim out of the hospital API token without
// verifying the signature. The console is not the token's audience and
// does not hold the hospital API's keys; it only needs the expiry to size
// the session lifetime.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time.UTC()
}
