package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		BaseURL:           srv.URL + "/",
		Timeout:           2 * time.Second,
		RequestsPerMinute: 6000,
	}, logging.NewMockLogger())
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{}, logging.NewMockLogger())
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, 30*time.Second, c.timeout)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, LoginPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "s3cret"}, creds)

		_, _ = io.WriteString(w, `{"access_token":"jwt-token"}`)
	})

	resp, err := c.Login(context.Background(), models.Credentials{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.AccessToken)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, ProfilePath, r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer jwt-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"userId":7,"username":"alice"}`)
	})

	profile, err := c.Profile(context.Background(), session.Session{Token: "jwt-token"})
	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{UserID: 7, Username: "alice"}, profile)

	_, err = c.Profile(context.Background(), session.Session{})
	var apiErr *parsererror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RegisterPath, r.URL.Path)
		var reg models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		assert.Equal(t, "bob@example.com", reg.Email)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":12}`)
	})

	require.NoError(t, c.Register(context.Background(), models.Registration{Email: "bob@example.com", Password: "pw"}))
}

func TestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Email already taken"}`, "Email already taken"},
		{"message list", http.StatusBadRequest, `{"message":["email must be an email","password too short"]}`, "email must be an email; password too short"},
		{"error field", http.StatusConflict, `{"error":"Conflict"}`, "Conflict"},
		{"message wins over error", http.StatusUnauthorized, `{"message":"Invalid credentials","error":"Unauthorized"}`, "Invalid credentials"},
		{"plain text body", http.StatusInternalServerError, `boom`, "Internal Server Error"},
		{"empty body", http.StatusBadGateway, ``, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "x"})

			var apiErr *parsererror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, RegisterPath, apiErr.Endpoint)
		})
	}
}

func TestMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := c.Login(context.Background(), models.Credentials{Username: "a", Password: "b"})
	assert.ErrorContains(t, err, "unmarshal response failed")
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := New(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, logging.NewMockLogger())
	_, err := c.Profile(context.Background(), session.Session{Token: "t"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestCancelledContextStopsAtLimiter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Register(ctx, models.Registration{})
	assert.ErrorContains(t, err, "rate limiter")
}

func TestSubmitFundingApplication(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(report, []byte("%PDF-1.4 fake"), 0600))

	app := models.FundingApplication{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "555-0100",
		BusinessName:      "Doe LLC",
		FundingAmount:     "25000",
		HasBusinessEntity: "yes",
		CreditReportPath:  report,
	}

	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, FundingPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Jane Doe", r.FormValue(models.FieldName))
		assert.Equal(t, "jane@example.com", r.FormValue(models.FieldEmail))
		assert.Equal(t, "555-0100", r.FormValue(models.FieldPhone))
		assert.Equal(t, "Doe LLC", r.FormValue(models.FieldBusinessName))
		assert.Equal(t, "25000", r.FormValue(models.FieldFundingAmount))
		assert.Equal(t, "yes", r.FormValue(models.FieldHasBusinessEntity))
		_, hasScore := r.MultipartForm.Value[models.FieldCreditScore]
		assert.False(t, hasScore)

		f, hdr, err := r.FormFile(models.FieldCreditReport)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "report.pdf", hdr.Filename)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "%PDF-1.4 fake", string(data))

		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, c.SubmitFundingApplication(context.Background(), session.Session{Token: "jwt"}, app))
	assert.Equal(t, "Bearer jwt", gotAuth)

	require.NoError(t, c.SubmitFundingApplication(context.Background(), session.Session{}, app))
	assert.Empty(t, gotAuth, "guest submissions carry no token")
}

func TestSubmitFundingApplication_MissingReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	err := c.SubmitFundingApplication(context.Background(), session.Session{}, models.FundingApplication{
		Name:             "x",
		CreditReportPath: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
