package aggregate

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"verdant/internal/join"
	"verdant/internal/models"
)

// CarePlanPage backs the care-plans view: all plans partitioned by the active
// flag, plus the collections needed to resolve plan foreign keys for display.
type CarePlanPage struct {
	Active    []models.CarePlan
	Inactive  []models.CarePlan
	Plants    []models.Plant
	CareTypes []models.CareType
}

// LoadCarePlanPage fetches care plans, plants, and both care-type tiers in
// parallel. The plan list itself degrades to empty (the server 404s a user
// with no plans); plants are primary.
func (s *Service) LoadCarePlanPage(ctx context.Context) (CarePlanPage, error) {
	var (
		plans  []models.CarePlan
		plants []models.Plant
		types  []models.CareType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plans, err = s.api.CarePlans(gctx)
		if err != nil {
			s.log.Warn("care plans unavailable", zap.Error(err))
			plans = []models.CarePlan{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		plants, err = s.api.Plants(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.CareTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return CarePlanPage{}, err
	}

	active, inactive := join.PartitionCarePlans(plans)
	return CarePlanPage{
		Active:    active,
		Inactive:  inactive,
		Plants:    plants,
		CareTypes: types,
	}, nil
}

// LogCarePage backs the care-logging view: the plant and care-type selection
// lists plus recent history, newest first.
type LogCarePage struct {
	Plants     []models.Plant
	CareTypes  []models.CareType
	RecentLogs []models.CareLog
}

// LoadLogCarePage fetches plants, the care-type union, and the care history
// in parallel. History degrades to empty; the selection lists are primary
// since the form is unusable without them.
func (s *Service) LoadLogCarePage(ctx context.Context) (LogCarePage, error) {
	var page LogCarePage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plants, err := s.api.Plants(gctx)
		if err != nil {
			return err
		}
		page.Plants = plants
		return nil
	})
	g.Go(func() error {
		types, err := s.CareTypes(gctx)
		if err != nil {
			return err
		}
		page.CareTypes = types
		return nil
	})
	g.Go(func() error {
		logs, err := s.PastCareLogs(gctx)
		if err != nil {
			s.log.Warn("care history unavailable", zap.Error(err))
			page.RecentLogs = []models.CareLog{}
			return nil
		}
		page.RecentLogs = logs
		return nil
	})
	if err := g.Wait(); err != nil {
		return LogCarePage{}, err
	}

	join.SortCareLogsByDateDesc(page.RecentLogs)
	return page, nil
}

// CareTypePage backs the care-types view. The two tiers stay separate here:
// rendering needs to know which entries are immutable defaults.
type CareTypePage struct {
	Defaults  []models.CareType
	UserTypes []models.CareType
}

// LoadCareTypePage fetches both care-type tiers in parallel, degrading the
// user tier to empty on failure.
func (s *Service) LoadCareTypePage(ctx context.Context) (CareTypePage, error) {
	var page CareTypePage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defaults, err := s.api.DefaultCareTypes(gctx)
		if err != nil {
			return err
		}
		page.Defaults = defaults
		return nil
	})
	g.Go(func() error {
		types, err := s.api.UserCareTypes(gctx)
		if err != nil {
			s.log.Warn("user care types unavailable", zap.Error(err))
			page.UserTypes = []models.CareType{}
			return nil
		}
		page.UserTypes = types
		return nil
	})
	if err := g.Wait(); err != nil {
		return CareTypePage{}, err
	}
	return page, nil
}

// PlantPage backs the plants view: the user's plants plus the species catalog
// for resolving species references.
type PlantPage struct {
	Plants  []models.Plant
	Species []models.Species
}

// LoadPlantPage fetches plants and species in parallel. Species degrade to
// empty; a dangling species reference then renders through its fallback.
func (s *Service) LoadPlantPage(ctx context.Context) (PlantPage, error) {
	var page PlantPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plants, err := s.api.Plants(gctx)
		if err != nil {
			return err
		}
		page.Plants = plants
		return nil
	})
	g.Go(func() error {
		species, err := s.api.Species(gctx)
		if err != nil {
			s.log.Warn("species catalog unavailable", zap.Error(err))
			page.Species = []models.Species{}
			return nil
		}
		page.Species = species
		return nil
	})
	if err := g.Wait(); err != nil {
		return PlantPage{}, err
	}
	return page, nil
}
