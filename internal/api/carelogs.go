package api

import (
	"context"
	"fmt"

	"verdant/internal/models"
)

// CreateCareLog records a completed care activity. CareDate defaults
// server-side to today when omitted.
func (c *Client) CreateCareLog(ctx context.Context, log models.NewCareLog) error {
	return c.post(ctx, "/plant-care", log, nil)
}

// CareLogsByPlant lists the historical care log for one plant.
func (c *Client) CareLogsByPlant(ctx context.Context, plantID int) ([]models.CareLog, error) {
	var envelope struct {
		CareLogs []models.CareLog `json:"care_logs"`
	}
	if err := c.get(ctx, fmt.Sprintf("/plant-care/plant/%d", plantID), &envelope); err != nil {
		if IsNotFound(err) {
			return []models.CareLog{}, nil
		}
		return nil, err
	}
	if envelope.CareLogs == nil {
		return []models.CareLog{}, nil
	}
	return envelope.CareLogs, nil
}
