// Package session holds the bearer token of a logged-in user and persists it
// between command invocations.
package session

import (
	"net/http"
	"time"
)

// Session is the authentication state of one user. The zero value is an
// anonymous session.
type Session struct {
	Token    string    `yaml:"token"`
	Username string    `yaml:"username,omitempty"`
	SavedAt  time.Time `yaml:"saved_at,omitempty"`
}

// IsAuthenticated reports whether the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Authorize returns a copy of req carrying the session's bearer token.
func (s Session) Authorize(req *http.Request) *http.Request {
	return WithAuthorization(s.Token, req)
}

// WithAuthorization returns a clone of req with "Authorization: Bearer
// <token>" set. An empty token yields a clone without the header. req itself
// is never modified.
func WithAuthorization(token string, req *http.Request) *http.Request {
	clone := req.Clone(req.Context())
	if token == "" {
		clone.Header.Del("Authorization")
		return clone
	}
	clone.Header.Set("Authorization", "Bearer "+token)
	return clone
}
