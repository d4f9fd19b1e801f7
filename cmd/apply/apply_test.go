package apply_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"fjacquet/creditlens/cmd/apply"
	"fjacquet/creditlens/internal/apiclient"
	"fjacquet/creditlens/internal/config"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	mu          sync.Mutex
	submissions []string // Authorization header per submission
}

func (b *backend) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(apiclient.ProfilePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"userId":1,"username":"jane"}`))
	})
	mux.HandleFunc(apiclient.FundingPath, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.submissions = append(b.submissions, r.Header.Get("Authorization"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newContainer(t *testing.T, baseURL string) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.API.BaseURL = baseURL
	cfg.API.TimeoutSeconds = 5
	cfg.API.RequestsPerMinute = 600
	cfg.Session.TokenFile = filepath.Join(t.TempDir(), "session.yaml")
	cfg.Output.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Batch.Workers = 1

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func application() models.FundingApplication {
	return models.FundingApplication{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "555-0100",
		FundingAmount:     "25,000",
		HasBusinessEntity: "no",
	}
}

func TestApplyCommand_Flags(t *testing.T) {
	for _, name := range []string{"name", "email", "phone", "business-name", "amount",
		"has-business-entity", "credit-score", "report", "guest"} {
		assert.NotNil(t, apply.Cmd.Flags().Lookup(name), name)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		guest    bool
		wantOut  string
		wantAuth string
	}{
		{name: "logged in", token: "good", wantOut: "Application submitted successfully for jane.\n", wantAuth: "Bearer good"},
		{name: "no session", wantOut: "Application submitted successfully as guest.\n"},
		{name: "expired session", token: "stale", wantOut: "Application submitted successfully as guest.\n"},
		{name: "guest flag", token: "good", guest: true, wantOut: "Application submitted successfully as guest.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &backend{}
			c := newContainer(t, b.start(t).URL)
			if tt.token != "" {
				require.NoError(t, c.GetSessionStore().Save(session.Session{Token: tt.token}))
			}

			var out bytes.Buffer
			require.NoError(t, apply.Run(context.Background(), c, application(), tt.guest, &out))
			assert.Equal(t, tt.wantOut, out.String())
			require.Len(t, b.submissions, 1)
			assert.Equal(t, tt.wantAuth, b.submissions[0])
		})
	}
}

func TestRun_InvalidApplication(t *testing.T) {
	b := &backend{}
	c := newContainer(t, b.start(t).URL)

	bad := application()
	bad.Email = "not-an-email"
	bad.CreditScore = "900"

	err := apply.Run(context.Background(), c, bad, true, &bytes.Buffer{})
	var verrs parsererror.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(models.FieldEmail))
	assert.True(t, verrs.Has(models.FieldCreditScore))
	assert.Empty(t, b.submissions)
}
