package api

import (
	"context"
	"fmt"

	"verdant/internal/models"
)

// CarePlans lists all of the user's care plans, active and inactive. The
// server answers 404 when the user has none; that folds into an empty list.
func (c *Client) CarePlans(ctx context.Context) ([]models.CarePlan, error) {
	return c.carePlans(ctx, "/plant-care/care-plans")
}

// ActiveCarePlans lists only plans with active set.
func (c *Client) ActiveCarePlans(ctx context.Context) ([]models.CarePlan, error) {
	return c.carePlans(ctx, "/plant-care/care-plans/active")
}

func (c *Client) carePlans(ctx context.Context, path string) ([]models.CarePlan, error) {
	var plans []models.CarePlan
	if err := c.get(ctx, path, &plans); err != nil {
		if IsNotFound(err) {
			return []models.CarePlan{}, nil
		}
		return nil, err
	}
	if plans == nil {
		return []models.CarePlan{}, nil
	}
	return plans, nil
}

// UpcomingCareLogs returns the server-computed schedule of due and near-due
// care. The entries denormalize plant and care-type names for display; no
// id resolution is needed to render them.
func (c *Client) UpcomingCareLogs(ctx context.Context) ([]models.UpcomingCareLog, error) {
	var envelope struct {
		CareLogs []models.UpcomingCareLog `json:"care_logs"`
	}
	if err := c.get(ctx, "/plant-care/care-plans/upcoming", &envelope); err != nil {
		if IsNotFound(err) {
			return []models.UpcomingCareLog{}, nil
		}
		return nil, err
	}
	if envelope.CareLogs == nil {
		return []models.UpcomingCareLog{}, nil
	}
	return envelope.CareLogs, nil
}

// CreateCarePlan adds a recurring schedule for one plant and care type.
func (c *Client) CreateCarePlan(ctx context.Context, plan models.NewCarePlan) error {
	return c.post(ctx, "/plant-care/care-plans", plan, nil)
}

// UpdateCarePlan patches the given fields, including toggling active.
func (c *Client) UpdateCarePlan(ctx context.Context, id int, update models.CarePlanUpdate) error {
	return c.patch(ctx, fmt.Sprintf("/plant-care/care-plans/%d", id), update, nil)
}

// DeleteCarePlan removes a care plan entirely.
func (c *Client) DeleteCarePlan(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/plant-care/care-plans/%d", id))
}
