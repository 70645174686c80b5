package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	// The backend matches emails case-insensitively, normalize before send.
	req := model.LoginRequest{Email: strings.ToLower(email), Password: password}
	resp := &model.AuthResponse{}
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", req, resp, WithoutAuth()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, email, password, username string) (*model.AuthResponse, error) {
	req := model.RegisterRequest{Email: strings.ToLower(email), Password: password, Username: username}
	resp := &model.AuthResponse{}
	if err := c.Do(ctx, http.MethodPost, "/api/auth/register", req, resp, WithoutAuth()); err != nil {
		return nil, err
	}
	return resp, nil
}

// Me validates the current token against the backend and returns the user
// it belongs to. Rejection is an expected transition here, so no
// notification is emitted.
func (c *Client) Me(ctx context.Context) (*model.VerifyResponse, error) {
	resp := &model.VerifyResponse{}
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, resp, Silently()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}
