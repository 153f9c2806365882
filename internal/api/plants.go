package api

import (
	"context"
	"fmt"

	"verdant/internal/models"
)

// Plants returns every plant owned by the current user. Never nil: an empty
// collection decodes to an empty slice.
func (c *Client) Plants(ctx context.Context) ([]models.Plant, error) {
	var envelope struct {
		Plants []models.Plant `json:"plants"`
	}
	if err := c.get(ctx, "/plants", &envelope); err != nil {
		return nil, err
	}
	if envelope.Plants == nil {
		return []models.Plant{}, nil
	}
	return envelope.Plants, nil
}

// CreatePlant adds a plant and returns the server's copy with its id.
func (c *Client) CreatePlant(ctx context.Context, plant models.NewPlant) (models.Plant, error) {
	var envelope struct {
		Plant models.Plant `json:"plant"`
	}
	if err := c.post(ctx, "/plants", plant, &envelope); err != nil {
		return models.Plant{}, err
	}
	return envelope.Plant, nil
}

// UpdatePlant patches the given fields; nil fields are left untouched.
func (c *Client) UpdatePlant(ctx context.Context, id int, update models.PlantUpdate) error {
	return c.patch(ctx, fmt.Sprintf("/plants/%d", id), update, nil)
}

// DeletePlant removes a plant. The server cascades the delete to the plant's
// care logs and plans.
func (c *Client) DeletePlant(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/plants/%d", id))
}
