package cli

import (
	"fmt"

	"verdant/internal/models"
	"verdant/internal/validation"
)

type SpeciesListCmd struct{}

func (c *SpeciesListCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	species, err := ctx.API.Species(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load species list")
	}
	if len(species) == 0 {
		fmt.Println("No species in the catalog yet.")
		return nil
	}

	for _, s := range species {
		fmt.Printf("[%d] %s", s.ID, s.CommonName)
		if s.ScientificName != "" {
			fmt.Printf(" (%s)", s.ScientificName)
		}
		if s.Sunlight != "" {
			fmt.Printf(" - sun: %s", s.Sunlight)
		}
		if s.WaterRequirements != "" {
			fmt.Printf(" - water: %s", s.WaterRequirements)
		}
		fmt.Println()
	}
	return nil
}

type SpeciesAddCmd struct {
	CommonName     string `arg:"" help:"Common name."`
	ScientificName string `short:"s" help:"Scientific name."`
	Sunlight       string `help:"Sunlight needs."`
	Water          string `help:"Watering needs."`
}

func (c *SpeciesAddCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if err := validation.NewSpecies(c.CommonName); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	err := ctx.API.CreateSpecies(reqCtx, models.NewSpecies{
		CommonName:        c.CommonName,
		ScientificName:    c.ScientificName,
		Sunlight:          c.Sunlight,
		WaterRequirements: c.Water,
	})
	if err != nil {
		return actionError(err, "Failed to add species")
	}
	fmt.Printf("Species %q added successfully!\n", c.CommonName)
	return nil
}
