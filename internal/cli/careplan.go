package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"verdant/internal/models"
	"verdant/internal/validation"
)

type PlanListCmd struct {
	All bool `short:"a" help:"Include inactive plans."`
}

func (c *PlanListCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	page, err := ctx.Agg.LoadCarePlanPage(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load care plans")
	}

	fmt.Printf("Active plans (%d):\n", len(page.Active))
	if len(page.Active) == 0 {
		fmt.Println("  No active care plans yet.")
	}
	for _, plan := range page.Active {
		fmt.Println("  " + formatCarePlan(plan, page.Plants, page.CareTypes))
	}

	if c.All && len(page.Inactive) > 0 {
		fmt.Printf("\nInactive plans (%d):\n", len(page.Inactive))
		for _, plan := range page.Inactive {
			fmt.Println("  " + formatCarePlan(plan, page.Plants, page.CareTypes))
		}
	}
	return nil
}

type PlanAddCmd struct {
	Plant     int    `short:"p" required:"" help:"Plant id."`
	Type      int    `short:"t" required:"" help:"Care type id."`
	StartDate string `help:"First due date (YYYY-MM-DD)."`
	Every     int    `short:"n" help:"Repeat every N days."`
	Note      string `help:"Optional note."`
	Inactive  bool   `help:"Create the plan paused."`
}

func (c *PlanAddCmd) Validate() error {
	if c.Every < 0 {
		return fmt.Errorf("frequency must be a positive number of days")
	}
	return nil
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if err := validation.NewCarePlan(c.Plant, c.Type); err != nil {
		return err
	}

	plan := models.NewCarePlan{
		PlantID:    c.Plant,
		CareTypeID: c.Type,
		Note:       c.Note,
	}
	if c.StartDate != "" {
		d, err := models.ParseDate(c.StartDate)
		if err != nil {
			return err
		}
		plan.StartDate = &d
	}
	if c.Every != 0 {
		plan.FrequencyDays = &c.Every
	}
	if c.Inactive {
		active := false
		plan.Active = &active
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if err := ctx.API.CreateCarePlan(reqCtx, plan); err != nil {
		return actionError(err, "Failed to create care plan. Please try again.")
	}
	fmt.Println("Care plan created successfully!")
	return nil
}

type PlanEditCmd struct {
	ID         int    `arg:"" help:"Care plan id."`
	Every      int    `short:"n" help:"New frequency in days."`
	StartDate  string `help:"New first due date (YYYY-MM-DD)."`
	Note       string `help:"New note."`
	Activate   bool   `help:"Mark the plan active."`
	Deactivate bool   `help:"Mark the plan inactive."`
}

func (c *PlanEditCmd) Validate() error {
	if c.Activate && c.Deactivate {
		return fmt.Errorf("--activate and --deactivate are mutually exclusive")
	}
	return nil
}

func (c *PlanEditCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	var update models.CarePlanUpdate
	if c.Every != 0 {
		update.FrequencyDays = &c.Every
	}
	if c.StartDate != "" {
		d, err := models.ParseDate(c.StartDate)
		if err != nil {
			return err
		}
		update.StartDate = &d
	}
	if c.Note != "" {
		update.Note = &c.Note
	}
	if c.Activate || c.Deactivate {
		active := c.Activate
		update.Active = &active
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if err := ctx.API.UpdateCarePlan(reqCtx, c.ID, update); err != nil {
		return actionError(err, "Failed to update care plan")
	}
	fmt.Println("Care plan updated successfully!")
	return nil
}

type PlanDeleteCmd struct {
	ID    int  `arg:"" help:"Care plan id."`
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete care plan #%d?", c.ID)).
			Value(&confirmed)
		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if err := ctx.API.DeleteCarePlan(reqCtx, c.ID); err != nil {
		return actionError(err, "Failed to delete care plan")
	}
	fmt.Println("Care plan deleted successfully!")
	return nil
}
