package api

import (
	"context"

	"verdant/internal/models"
)

// CurrentUser resolves the session token to its account.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var envelope struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/users", &envelope); err != nil {
		return models.User{}, err
	}
	return envelope.User, nil
}

// ChangePassword rotates the account password. The server revalidates the
// old password and the confirmation match.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return c.patch(ctx, "/users/password", change, nil)
}
