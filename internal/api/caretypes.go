package api

import (
	"context"
	"fmt"

	"verdant/internal/models"
)

// DefaultCareTypes lists the system-default care types visible to everyone.
func (c *Client) DefaultCareTypes(ctx context.Context) ([]models.CareType, error) {
	return c.careTypes(ctx, "/care-types/default")
}

// UserCareTypes lists the current user's private care types.
func (c *Client) UserCareTypes(ctx context.Context) ([]models.CareType, error) {
	return c.careTypes(ctx, "/care-types/user")
}

func (c *Client) careTypes(ctx context.Context, path string) ([]models.CareType, error) {
	var envelope struct {
		CareTypes []models.CareType `json:"care_types"`
	}
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}
	if envelope.CareTypes == nil {
		return []models.CareType{}, nil
	}
	return envelope.CareTypes, nil
}

// CreateCareType adds a user-owned care type.
func (c *Client) CreateCareType(ctx context.Context, careType models.NewCareType) error {
	return c.post(ctx, "/care-types", careType, nil)
}

// UpdateCareType patches a user-owned care type. Defaults are rejected
// server-side; the UI never offers the action.
func (c *Client) UpdateCareType(ctx context.Context, id int, update models.CareTypeUpdate) error {
	return c.patch(ctx, fmt.Sprintf("/care-types/%d", id), update, nil)
}

// DeleteCareType removes a user-owned care type.
func (c *Client) DeleteCareType(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/care-types/%d", id))
}
