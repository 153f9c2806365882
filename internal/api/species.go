package api

import (
	"context"

	"verdant/internal/models"
)

// Species lists the shared species catalog.
func (c *Client) Species(ctx context.Context) ([]models.Species, error) {
	var envelope struct {
		Species []models.Species `json:"species"`
	}
	if err := c.get(ctx, "/species", &envelope); err != nil {
		return nil, err
	}
	if envelope.Species == nil {
		return []models.Species{}, nil
	}
	return envelope.Species, nil
}

// CreateSpecies adds an entry to the shared catalog.
func (c *Client) CreateSpecies(ctx context.Context, species models.NewSpecies) error {
	return c.post(ctx, "/species", species, nil)
}
