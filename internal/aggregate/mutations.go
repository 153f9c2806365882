package aggregate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"verdant/internal/join"
	"verdant/internal/models"
)

// MarkUpcomingDone records a completed care activity for an upcoming schedule
// entry. The entry carries the care type as a denormalized name, so it is
// resolved back to an id against the unioned care-type list before the log is
// created. Completing a task changes plants, the schedule, and the history at
// once; the caller reloads the dashboard afterwards.
func (s *Service) MarkUpcomingDone(ctx context.Context, entry models.UpcomingCareLog, careTypes []models.CareType) error {
	careTypeID, ok := join.CareTypeIDByName(entry.CareType, careTypes)
	if !ok {
		return fmt.Errorf("care type %q not found", entry.CareType)
	}

	today := models.Today()
	return s.api.CreateCareLog(ctx, models.NewCareLog{
		PlantID:    entry.PlantID,
		CareTypeID: careTypeID,
		CareDate:   &today,
		Note:       entry.Note,
	})
}

// LogCareForPlants records the same care activity against several plants at
// once, one creation per plant, issued concurrently. The first failure fails
// the batch; logs already created are kept (the server has no batch
// endpoint, and care logs are append-only).
func (s *Service) LogCareForPlants(ctx context.Context, plantIDs []int, careTypeID int, note string) error {
	today := models.Today()

	g, gctx := errgroup.WithContext(ctx)
	for _, plantID := range plantIDs {
		g.Go(func() error {
			return s.api.CreateCareLog(gctx, models.NewCareLog{
				PlantID:    plantID,
				CareTypeID: careTypeID,
				CareDate:   &today,
				Note:       note,
			})
		})
	}
	return g.Wait()
}
