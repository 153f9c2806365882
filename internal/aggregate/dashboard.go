package aggregate

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"verdant/internal/join"
	"verdant/internal/models"
)

// DashboardData is the dashboard page's snapshot: the plant collection plus
// the server-computed schedule and the flattened care history, with the
// headline counters derived client-side.
type DashboardData struct {
	Plants   []models.Plant
	Upcoming []models.UpcomingCareLog
	PastLogs []models.CareLog

	TotalPlants    int
	SpeciesTracked int
	UpcomingCount  int
	OverdueCount   int
}

// LoadDashboard fetches plants, the upcoming schedule, and past care logs in
// parallel. Plants are primary: if they fail the load fails. The schedule and
// history are secondary and degrade to empty lists so the page still renders.
func (s *Service) LoadDashboard(ctx context.Context) (DashboardData, error) {
	var data DashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plants, err := s.api.Plants(gctx)
		if err != nil {
			return err
		}
		data.Plants = plants
		return nil
	})
	g.Go(func() error {
		upcoming, err := s.api.UpcomingCareLogs(gctx)
		if err != nil {
			s.log.Warn("upcoming schedule unavailable", zap.Error(err))
			data.Upcoming = []models.UpcomingCareLog{}
			return nil
		}
		data.Upcoming = upcoming
		return nil
	})
	g.Go(func() error {
		logs, err := s.PastCareLogs(gctx)
		if err != nil {
			s.log.Warn("care history unavailable", zap.Error(err))
			data.PastLogs = []models.CareLog{}
			return nil
		}
		data.PastLogs = logs
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}

	join.SortCareLogsByDateDesc(data.PastLogs)

	today := models.Today()
	data.TotalPlants = len(data.Plants)
	data.SpeciesTracked = join.DistinctSpeciesCount(data.Plants)
	data.UpcomingCount = len(data.Upcoming)
	data.OverdueCount = join.CountOverdue(data.Upcoming, today)
	return data, nil
}
