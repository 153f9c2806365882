package cli

import (
	"fmt"

	"verdant/internal/constants"
	"verdant/internal/join"
	"verdant/internal/models"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	data, err := ctx.Agg.LoadDashboard(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load dashboard")
	}

	fmt.Printf("Total plants:    %d\n", data.TotalPlants)
	fmt.Printf("Species tracked: %d\n", data.SpeciesTracked)
	fmt.Printf("Upcoming tasks:  %d\n", data.UpcomingCount)
	fmt.Printf("Overdue tasks:   %d\n", data.OverdueCount)

	fmt.Println("\nUpcoming care:")
	if len(data.Upcoming) == 0 {
		fmt.Println("  No upcoming tasks")
	}
	today := models.Today()
	for _, entry := range data.Upcoming {
		marker := " "
		if join.IsOverdue(entry.DueDate, today) {
			marker = "!"
		}
		fmt.Printf("%s %s - %s, due %s\n", marker, entry.PlantNickname, entry.CareType, entry.DueDate.Display())
		if entry.Note != "" {
			fmt.Printf("    %s\n", entry.Note)
		}
	}

	fmt.Println("\nRecent care:")
	if len(data.PastLogs) == 0 {
		fmt.Println("  No care logged yet")
	}
	recent := data.PastLogs
	if len(recent) > constants.RecentLogLimit {
		recent = recent[:constants.RecentLogLimit]
	}
	careTypes, err := ctx.Agg.CareTypes(reqCtx)
	if err != nil {
		careTypes = []models.CareType{}
	}
	for _, log := range recent {
		fmt.Println("  " + formatCareLog(log, data.Plants, careTypes))
	}
	return nil
}
