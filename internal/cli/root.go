package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"verdant/internal/aggregate"
	"verdant/internal/api"
	"verdant/internal/join"
	"verdant/internal/models"
	"verdant/internal/session"
)

// Context is the shared state handed to every command.
type Context struct {
	Session *session.Store
	API     *api.Client
	Agg     *aggregate.Service
	Log     *zap.Logger

	// Server is the base URL the API client was built against, recorded into
	// the session on login so later invocations reuse it.
	Server string
}

const requestTimeout = 30 * time.Second

// timeoutContext bounds one command's network work.
func timeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func requireLogin(ctx *Context) error {
	if !ctx.Session.LoggedIn() {
		return errors.New("not logged in; run 'verdant login' first")
	}
	return nil
}

// actionError surfaces the server's message when there is one, falling back
// to a generic per-action string.
func actionError(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}

func formatCarePlan(plan models.CarePlan, plants []models.Plant, careTypes []models.CareType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s - %s", plan.ID, join.PlantName(plan.PlantID, plants), join.CareTypeName(plan.CareTypeID, careTypes))
	if plan.FrequencyDays != nil {
		fmt.Fprintf(&b, " (%s)", join.FormatFrequency(*plan.FrequencyDays))
	}
	if plan.StartDate != nil {
		fmt.Fprintf(&b, " from %s", plan.StartDate.Display())
	}
	if plan.Note != "" {
		fmt.Fprintf(&b, " - %s", plan.Note)
	}
	return b.String()
}

func formatCareLog(log models.CareLog, plants []models.Plant, careTypes []models.CareType) string {
	line := fmt.Sprintf("%s  %s - %s", log.CareDate, join.PlantName(log.PlantID, plants), join.CareTypeName(log.CareTypeID, careTypes))
	if log.Note != "" {
		line += " - " + log.Note
	}
	return line
}
