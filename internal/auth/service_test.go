package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	token       string
	loginErr    error
	registerErr error
	registered  []models.Registration
	validTokens map[string]models.UserProfile
}

func (f *fakeAPI) Login(_ context.Context, creds models.Credentials) (models.LoginResponse, error) {
	if f.loginErr != nil {
		return models.LoginResponse{}, f.loginErr
	}
	return models.LoginResponse{AccessToken: f.token}, nil
}

func (f *fakeAPI) Register(_ context.Context, reg models.Registration) error {
	f.registered = append(f.registered, reg)
	return f.registerErr
}

func (f *fakeAPI) Profile(_ context.Context, sess session.Session) (models.UserProfile, error) {
	if p, ok := f.validTokens[sess.Token]; ok {
		return p, nil
	}
	return models.UserProfile{}, &parsererror.APIError{Status: 401, Message: "Unauthorized"}
}

func newTestService(t *testing.T, api *fakeAPI) (*Service, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"), logging.NewMockLogger())
	return NewService(api, store, logging.NewMockLogger()), store
}

func alice() models.UserProfile {
	return models.UserProfile{UserID: 1, Username: "alice"}
}

func TestLogin_Success(t *testing.T) {
	api := &fakeAPI{token: "tok", validTokens: map[string]models.UserProfile{"tok": alice()}}
	svc, store := newTestService(t, api)

	state, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", state.Session.Token)
	assert.Equal(t, alice(), state.User)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", stored.Token)
	assert.Equal(t, "alice", stored.Username)
}

func TestLogin_FailureClearsStoredToken(t *testing.T) {
	api := &fakeAPI{loginErr: &parsererror.APIError{Status: 401, Message: "Invalid credentials"}}
	svc, store := newTestService(t, api)
	require.NoError(t, store.Save(session.Session{Token: "old"}))

	_, err := svc.Login(context.Background(), "alice", "wrong")

	var apiErr *parsererror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	stored, err := store.Load()
	require.NoError(t, err)
	assert.False(t, stored.IsAuthenticated())
}

func TestLogin_ProfileFailureClearsToken(t *testing.T) {
	api := &fakeAPI{token: "tok"}
	svc, store := newTestService(t, api)

	_, err := svc.Login(context.Background(), "alice", "pw")
	require.Error(t, err)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.False(t, stored.IsAuthenticated())
}

func TestLogin_EmptyToken(t *testing.T) {
	svc, _ := newTestService(t, &fakeAPI{})
	_, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorContains(t, err, "no access token")
}

func TestRestore(t *testing.T) {
	t.Run("no stored token", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeAPI{})
		_, err := svc.Restore(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("valid token", func(t *testing.T) {
		svc, store := newTestService(t, &fakeAPI{validTokens: map[string]models.UserProfile{"tok": alice()}})
		require.NoError(t, store.Save(session.Session{Token: "tok"}))

		state, err := svc.Restore(context.Background())
		require.NoError(t, err)
		assert.Equal(t, alice(), state.User)
	})

	t.Run("rejected token is cleared", func(t *testing.T) {
		svc, store := newTestService(t, &fakeAPI{})
		require.NoError(t, store.Save(session.Session{Token: "expired"}))

		_, err := svc.Restore(context.Background())
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, "session expired", err.Error())

		stored, err := store.Load()
		require.NoError(t, err)
		assert.False(t, stored.IsAuthenticated())
	})
}

func TestLogout(t *testing.T) {
	svc, store := newTestService(t, &fakeAPI{})
	require.NoError(t, store.Save(session.Session{Token: "tok"}))

	require.NoError(t, svc.Logout())

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		fields   []string
	}{
		{name: "valid", email: "bob@example.com", password: "pw", confirm: "pw"},
		{name: "mismatch", email: "bob@example.com", password: "pw", confirm: "pw2", fields: []string{"confirm"}},
		{name: "missing everything", fields: []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc, _ := newTestService(t, api)

			err := svc.Register(context.Background(), tt.email, tt.password, tt.confirm)

			if len(tt.fields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, []models.Registration{{Email: tt.email, Password: tt.password}}, api.registered)
				return
			}
			var verrs parsererror.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			for _, f := range tt.fields {
				assert.True(t, verrs.Has(f), f)
			}
			assert.Empty(t, api.registered, "no request on invalid input")
		})
	}
}

func TestRegister_APIError(t *testing.T) {
	api := &fakeAPI{registerErr: &parsererror.APIError{Status: 409, Message: "Email already taken"}}
	svc, _ := newTestService(t, api)

	err := svc.Register(context.Background(), "bob@example.com", "pw", "pw")
	assert.ErrorContains(t, err, "Email already taken")
}
