// Package aggregate composes the per-page views out of parallel resource
// fetches and runs the mutate-then-reload write paths. Pages never talk to
// the API client directly; they ask this service for a fully joined snapshot
// and re-request it from scratch after any successful mutation.
package aggregate

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"verdant/internal/api"
	"verdant/internal/join"
	"verdant/internal/models"
)

// Service builds aggregate views. Secondary fetches degrade to empty
// collections on failure so a page can still render; primary fetches fail the
// whole load.
type Service struct {
	api *api.Client
	log *zap.Logger
}

func New(client *api.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: client, log: log}
}

// CareTypes returns the union every selection list uses: system defaults
// followed by the user's own types. The defaults fetch is primary; the
// user-types fetch degrades to an empty list so default-only data still
// renders.
func (s *Service) CareTypes(ctx context.Context) ([]models.CareType, error) {
	var defaults, userTypes []models.CareType

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		defaults, err = s.api.DefaultCareTypes(ctx)
		return err
	})
	g.Go(func() error {
		types, err := s.api.UserCareTypes(ctx)
		if err != nil {
			s.log.Warn("user care types unavailable", zap.Error(err))
			userTypes = []models.CareType{}
			return nil
		}
		userTypes = types
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return join.UnionCareTypes(defaults, userTypes), nil
}

// PastCareLogs assembles the user's full care history by fanning out one
// request per plant and flattening the results. There is no single endpoint
// for it; the log table is keyed by plant.
func (s *Service) PastCareLogs(ctx context.Context) ([]models.CareLog, error) {
	plants, err := s.api.Plants(ctx)
	if err != nil {
		return nil, err
	}

	perPlant := make([][]models.CareLog, len(plants))
	g, ctx := errgroup.WithContext(ctx)
	for i, plant := range plants {
		g.Go(func() error {
			logs, err := s.api.CareLogsByPlant(ctx, plant.ID)
			if err != nil {
				return err
			}
			perPlant[i] = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := []models.CareLog{}
	for _, logs := range perPlant {
		all = append(all, logs...)
	}
	return all, nil
}
