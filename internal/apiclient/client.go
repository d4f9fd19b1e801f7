// Package apiclient talks to the remote auth and funding REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/session"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:3000"

// Endpoints of the remote API.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	ProfilePath  = "/auth/profile"
	FundingPath  = "/api/apply-funding"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Options configures a Client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	HTTPClient        *http.Client
}

// Client is a thin JSON/multipart client of the remote API. It is safe for
// concurrent use; all requests share one rate limiter.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
	logger  logging.Logger
}

// New creates a Client. Zero options fall back to DefaultBaseURL, a 30 second
// timeout and 60 requests per minute.
func New(opts Options, logger logging.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 60
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	limit := rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		client:  opts.HTTPClient,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// BaseURL returns the API root all endpoints are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON sends in (if non-nil) as JSON and decodes the response into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, sess session.Session, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	if in != nil {
		header.Set("Content-Type", "application/json")
	}
	return c.do(ctx, sess, method, path, header, body, out)
}

// do runs one rate-limited request with the client timeout and maps non-2xx
// responses to *parsererror.APIError.
func (c *Client) do(ctx context.Context, sess session.Session, method, path string, header http.Header, body io.Reader, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req = sess.Authorize(req)

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: request failed: %w", method, path, err)
	}
	defer res.Body.Close()

	c.logger.Debug("API request completed",
		logging.F(logging.FieldMethod, method),
		logging.F(logging.FieldEndpoint, path),
		logging.F(logging.FieldStatus, res.StatusCode),
		logging.F(logging.FieldDuration, time.Since(start).String()))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(method, path, res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: unmarshal response failed: %w", method, path, err)
	}
	return nil
}

// newAPIError builds an APIError, preferring the JSON body's "message" or
// "error" field over the status text.
func newAPIError(method, path string, res *http.Response) *parsererror.APIError {
	apiErr := &parsererror.APIError{
		Method:   method,
		Endpoint: path,
		Status:   res.StatusCode,
		Message:  http.StatusText(res.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if json.Unmarshal(data, &payload) != nil {
		return apiErr
	}
	if msg := messageText(payload.Message); msg != "" {
		apiErr.Message = msg
	} else if payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}

// messageText accepts both a string and a list of strings, as validation
// errors are often reported as ["field must ...", ...].
func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
