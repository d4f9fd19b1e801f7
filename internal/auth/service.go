// Package auth manages the login state of the CLI user: it obtains tokens
// from the remote API and keeps them in the session store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/session"
)

var (
	// ErrNotAuthenticated is returned when no token is stored.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrSessionExpired is returned when the stored token is rejected.
	ErrSessionExpired = errors.New("session expired")
)

// API is the subset of the remote API the auth flow needs.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
	Register(ctx context.Context, reg models.Registration) error
	Profile(ctx context.Context, sess session.Session) (models.UserProfile, error)
}

// TokenStore persists the session between invocations.
type TokenStore interface {
	Load() (session.Session, error)
	Save(sess session.Session) error
	Clear() error
}

// State is the authenticated user together with their session.
type State struct {
	Session session.Session
	User    models.UserProfile
}

// Service implements login, logout, registration and session restore.
type Service struct {
	api    API
	store  TokenStore
	logger logging.Logger
}

// NewService creates an auth Service.
func NewService(api API, store TokenStore, logger logging.Logger) *Service {
	return &Service{api: api, store: store, logger: logger}
}

// Login authenticates, stores the issued token and fetches the user profile.
// On any failure the stored token is cleared.
func (s *Service) Login(ctx context.Context, username, password string) (State, error) {
	log := s.logger.WithField(logging.FieldUsername, username)

	resp, err := s.api.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		s.clear()
		log.WithError(err).Warn("Login failed")
		return State{}, fmt.Errorf("login failed: %w", err)
	}
	if resp.AccessToken == "" {
		s.clear()
		return State{}, fmt.Errorf("login failed: no access token in response")
	}

	sess := session.Session{Token: resp.AccessToken, Username: username}
	if err := s.store.Save(sess); err != nil {
		return State{}, err
	}

	user, err := s.api.Profile(ctx, sess)
	if err != nil {
		s.clear()
		log.WithError(err).Warn("Profile fetch after login failed")
		return State{}, fmt.Errorf("login failed: %w", err)
	}

	log.Info("Logged in")
	return State{Session: sess, User: user}, nil
}

// Restore loads the stored session and validates it against the profile
// endpoint. A rejected token is cleared and reported as ErrSessionExpired.
func (s *Service) Restore(ctx context.Context) (State, error) {
	sess, err := s.store.Load()
	if err != nil {
		return State{}, err
	}
	if !sess.IsAuthenticated() {
		return State{}, ErrNotAuthenticated
	}

	user, err := s.api.Profile(ctx, sess)
	if err != nil {
		s.logger.WithError(err).Debug("Stored session rejected")
		s.clear()
		return State{}, ErrSessionExpired
	}
	return State{Session: sess, User: user}, nil
}

// Logout removes the stored token.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("Logged out")
	return nil
}

// Register validates the password confirmation locally, then creates the account.
func (s *Service) Register(ctx context.Context, email, password, confirm string) error {
	var errs parsererror.ValidationErrors
	if email == "" {
		errs = append(errs, &parsererror.ValidationError{Field: "email", Reason: "is required"})
	}
	if password == "" {
		errs = append(errs, &parsererror.ValidationError{Field: "password", Reason: "is required"})
	}
	if password != confirm {
		errs = append(errs, &parsererror.ValidationError{Field: "confirm", Reason: "Passwords do not match"})
	}
	if len(errs) > 0 {
		return errs
	}

	if err := s.api.Register(ctx, models.Registration{Email: email, Password: password}); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	s.logger.Info("Registered account", logging.F("email", email))
	return nil
}

func (s *Service) clear() {
	if err := s.store.Clear(); err != nil {
		s.logger.WithError(err).Warn("Failed to clear stored session")
	}
}
