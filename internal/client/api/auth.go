package api

import (
	"context"
	"net/url"

	"github.com/avoskan/taskdeck/internal/client/models"
)

const authPrefix = "auth"

// Register creates a new account. The backend issues a token pair right
// away, so a successful registration doubles as a login.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, authPrefix+"/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates with a username (or email) and password. The endpoint
// takes a form-encoded body, not JSON.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.AuthResponse
	if err := c.postForm(ctx, authPrefix+"/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges the refresh token for a new access token.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	var resp models.RefreshResponse
	if err := c.post(ctx, authPrefix+"/refresh", models.RefreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout asks the server to revoke the refresh token. Local session
// teardown does not depend on this call succeeding.
func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	return c.post(ctx, authPrefix+"/logout", models.LogoutRequest{RefreshToken: refreshToken}, nil)
}
