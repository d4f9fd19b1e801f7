package apiclient

import (
	"context"
	"net/http"

	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/session"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.doJSON(ctx, session.Session{}, http.MethodPost, LoginPath, creds, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	return resp, nil
}

// Register creates an account. The response body is ignored.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.doJSON(ctx, session.Session{}, http.MethodPost, RegisterPath, reg, nil)
}

// Profile fetches the profile of the session's user.
func (c *Client) Profile(ctx context.Context, sess session.Session) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doJSON(ctx, sess, http.MethodGet, ProfilePath, nil, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
