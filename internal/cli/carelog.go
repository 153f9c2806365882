package cli

import (
	"fmt"

	"verdant/internal/constants"
	"verdant/internal/join"
	"verdant/internal/models"
	"verdant/internal/validation"
)

type CareLogCmd struct {
	Plants []int  `short:"p" required:"" help:"Plant id. Repeat to log the same care for several plants."`
	Type   int    `short:"t" required:"" help:"Care type id."`
	Date   string `short:"d" help:"Care date (YYYY-MM-DD), defaults to today."`
	Note   string `help:"Optional note."`
}

func (c *CareLogCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if len(c.Plants) == 0 {
		return fmt.Errorf("Please select at least one plant and a care type")
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if len(c.Plants) > 1 {
		// Multi-plant logging always stamps today, matching the batch form.
		if err := ctx.Agg.LogCareForPlants(reqCtx, c.Plants, c.Type, c.Note); err != nil {
			return actionError(err, "Failed to log care for some plants. Please try again.")
		}
		fmt.Printf("Care logged for %d %s!\n", len(c.Plants), join.Pluralize(len(c.Plants), "plant"))
		return nil
	}

	if err := validation.NewCareLog(c.Plants[0], c.Type); err != nil {
		return err
	}

	log := models.NewCareLog{PlantID: c.Plants[0], CareTypeID: c.Type, Note: c.Note}
	if c.Date != "" {
		d, err := models.ParseDate(c.Date)
		if err != nil {
			return err
		}
		log.CareDate = &d
	}

	if err := ctx.API.CreateCareLog(reqCtx, log); err != nil {
		return actionError(err, "Failed to log care. Please try again.")
	}
	fmt.Println("Care logged successfully!")
	return nil
}

type CareRecentCmd struct {
	Limit int `short:"n" help:"How many logs to show." default:"10"`
}

func (c *CareRecentCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	page, err := ctx.Agg.LoadLogCarePage(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load data")
	}

	if len(page.RecentLogs) == 0 {
		fmt.Println("No care logs yet.")
		return nil
	}

	limit := c.Limit
	if limit <= 0 {
		limit = constants.RecentLogLimit
	}
	logs := page.RecentLogs
	if len(logs) > limit {
		logs = logs[:limit]
	}
	for _, log := range logs {
		fmt.Println(formatCareLog(log, page.Plants, page.CareTypes))
	}
	return nil
}
