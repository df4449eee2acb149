package api

import (
	"context"
	"net/http"

	"github.com/travelplan/travelplan-go/internal/model"
)

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp)
	return resp, err
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp)
	return resp, err
}

// Profile calls GET /auth/profile for the current token's user.
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user)
	return user, err
}
