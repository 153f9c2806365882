package api

import (
	"context"

	"verdant/internal/models"
)

// Login exchanges credentials for a bearer token and the session user.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an account and returns a token for the new user.
func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", reg, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}
