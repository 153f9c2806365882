package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"verdant/internal/aggregate"
	"verdant/internal/api"
	"verdant/internal/models"
)

const requestTimeout = 30 * time.Second

// Load results carry the generation that requested them. A page switch bumps
// the generation, so a fetch completing after the user has navigated away is
// discarded instead of clobbering the new page's state.

type dashboardLoadedMsg struct {
	gen  int
	data aggregate.DashboardData
	err  error
}

type plantsLoadedMsg struct {
	gen  int
	page aggregate.PlantPage
	err  error
}

type plansLoadedMsg struct {
	gen  int
	page aggregate.CarePlanPage
	err  error
}

type logCareLoadedMsg struct {
	gen  int
	page aggregate.LogCarePage
	err  error
}

type typesLoadedMsg struct {
	gen  int
	page aggregate.CareTypePage
	err  error
}

type userLoadedMsg struct {
	gen  int
	user models.User
	err  error
}

// mutationDoneMsg reports a write path settling. On success the named page is
// reloaded from scratch; there is no incremental patching.
type mutationDoneMsg struct {
	success  string
	fallback string
	reload   page
	err      error
}

func (m Model) loadCmd(p page) tea.Cmd {
	gen := m.generation
	switch p {
	case pageDashboard:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			data, err := m.agg.LoadDashboard(ctx)
			return dashboardLoadedMsg{gen: gen, data: data, err: err}
		}
	case pagePlants:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			page, err := m.agg.LoadPlantPage(ctx)
			return plantsLoadedMsg{gen: gen, page: page, err: err}
		}
	case pagePlans:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			page, err := m.agg.LoadCarePlanPage(ctx)
			return plansLoadedMsg{gen: gen, page: page, err: err}
		}
	case pageLogCare:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			page, err := m.agg.LoadLogCarePage(ctx)
			return logCareLoadedMsg{gen: gen, page: page, err: err}
		}
	case pageTypes:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			page, err := m.agg.LoadCareTypePage(ctx)
			return typesLoadedMsg{gen: gen, page: page, err: err}
		}
	case pageSettings:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			user, err := m.api.CurrentUser(ctx)
			return userLoadedMsg{gen: gen, user: user, err: err}
		}
	}
	return nil
}

// mutate wraps a write call with the mutation contract: the result names the
// page to reload on success and the generic fallback shown when the server
// sends no message.
func mutate(success, fallback string, reload page, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := call(ctx)
		return mutationDoneMsg{success: success, fallback: fallback, reload: reload, err: err}
	}
}

// errorMessage extracts the user-facing text for a failed action.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
