package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"verdant/internal/models"
	"verdant/internal/validation"
)

type TypeListCmd struct{}

func (c *TypeListCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	page, err := ctx.Agg.LoadCareTypePage(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load care types")
	}

	fmt.Printf("Default care types (%d):\n", len(page.Defaults))
	for _, ct := range page.Defaults {
		printCareType(ct)
	}
	fmt.Printf("\nYour care types (%d):\n", len(page.UserTypes))
	if len(page.UserTypes) == 0 {
		fmt.Println("  None yet. Add one with 'verdant type add'.")
	}
	for _, ct := range page.UserTypes {
		printCareType(ct)
	}
	return nil
}

func printCareType(ct models.CareType) {
	fmt.Printf("  [%d] %s", ct.ID, ct.Name)
	if ct.Description != "" {
		fmt.Printf(" - %s", ct.Description)
	}
	fmt.Println()
}

type TypeAddCmd struct {
	Name        string `arg:"" help:"Care type name."`
	Description string `short:"d" help:"What the activity involves."`
}

func (c *TypeAddCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if err := validation.NewCareType(c.Name); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	err := ctx.API.CreateCareType(reqCtx, models.NewCareType{Name: c.Name, Description: c.Description})
	if err != nil {
		return actionError(err, "Failed to create care type")
	}
	fmt.Println("Care type added successfully!")
	return nil
}

type TypeEditCmd struct {
	ID          int    `arg:"" help:"Care type id. Defaults cannot be edited."`
	Name        string `help:"New name."`
	Description string `short:"d" help:"New description."`
}

func (c *TypeEditCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if err := c.guardDefault(ctx); err != nil {
		return err
	}

	var update models.CareTypeUpdate
	if c.Name != "" {
		update.Name = &c.Name
	}
	if c.Description != "" {
		update.Description = &c.Description
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if err := ctx.API.UpdateCareType(reqCtx, c.ID, update); err != nil {
		return actionError(err, "Failed to update care type")
	}
	fmt.Println("Care type updated successfully!")
	return nil
}

func (c *TypeEditCmd) guardDefault(ctx *Context) error {
	reqCtx, cancel := timeoutContext()
	defer cancel()

	defaults, err := ctx.API.DefaultCareTypes(reqCtx)
	if err != nil {
		return nil // server enforces ownership anyway
	}
	for _, ct := range defaults {
		if ct.ID == c.ID {
			return fmt.Errorf("%q is a default care type and cannot be edited", ct.Name)
		}
	}
	return nil
}

type TypeDeleteCmd struct {
	ID    int  `arg:"" help:"Care type id. Defaults cannot be deleted."`
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *TypeDeleteCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete care type #%d?", c.ID)).
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

	if err := ctx.API.DeleteCareType(reqCtx, c.ID); err != nil {
		return actionError(err, "Failed to delete care type")
	}
	fmt.Println("Care type deleted successfully!")
	return nil
}
