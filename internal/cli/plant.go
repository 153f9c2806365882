package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"verdant/internal/join"
	"verdant/internal/models"
	"verdant/internal/validation"
)

type PlantListCmd struct{}

func (c *PlantListCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	page, err := ctx.Agg.LoadPlantPage(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load plants")
	}
	if len(page.Plants) == 0 {
		fmt.Println("No plants yet. Add one with 'verdant plant add'.")
		return nil
	}

	for _, plant := range page.Plants {
		fmt.Printf("[%d] %s", plant.ID, plant.Nickname)
		switch species, ref := join.SpeciesForPlant(plant, page.Species); ref {
		case join.SpeciesFound:
			fmt.Printf(" (%s)", species.CommonName)
		case join.SpeciesMissing:
			fmt.Printf(" (species #%d, unknown)", *plant.SpeciesID)
		}
		if plant.Location != "" {
			fmt.Printf(" @ %s", plant.Location)
		}
		if plant.LastWatered != nil {
			fmt.Printf(", last watered %s", plant.LastWatered.Display())
		}
		fmt.Println()
	}
	return nil
}

type PlantAddCmd struct {
	Nickname    string `arg:"" help:"Plant nickname."`
	Species     int    `short:"s" help:"Species id from 'verdant species list'."`
	Location    string `short:"l" help:"Where the plant lives."`
	DateAdded   string `help:"Date acquired (YYYY-MM-DD)."`
	LastWatered string `help:"Last watering date (YYYY-MM-DD)."`
}

func (c *PlantAddCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}
	if err := validation.NewPlant(c.Nickname); err != nil {
		return err
	}

	plant := models.NewPlant{Nickname: c.Nickname, Location: c.Location}
	if c.Species != 0 {
		plant.SpeciesID = &c.Species
	}
	if c.DateAdded != "" {
		d, err := models.ParseDate(c.DateAdded)
		if err != nil {
			return err
		}
		plant.DateAdded = &d
	}
	if c.LastWatered != "" {
		d, err := models.ParseDate(c.LastWatered)
		if err != nil {
			return err
		}
		plant.LastWatered = &d
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	created, err := ctx.API.CreatePlant(reqCtx, plant)
	if err != nil {
		return actionError(err, "Failed to add plant. Please try again.")
	}
	fmt.Printf("Plant added successfully! (%s, id %d)\n", created.Nickname, created.ID)
	return nil
}

type PlantEditCmd struct {
	ID          int    `arg:"" help:"Plant id."`
	Nickname    string `help:"New nickname."`
	Species     int    `short:"s" help:"New species id."`
	Location    string `short:"l" help:"New location."`
	LastWatered string `help:"New last watering date (YYYY-MM-DD)."`
}

func (c *PlantEditCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	var update models.PlantUpdate
	if c.Nickname != "" {
		update.Nickname = &c.Nickname
	}
	if c.Species != 0 {
		update.SpeciesID = &c.Species
	}
	if c.Location != "" {
		update.Location = &c.Location
	}
	if c.LastWatered != "" {
		d, err := models.ParseDate(c.LastWatered)
		if err != nil {
			return err
		}
		update.LastWatered = &d
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	if err := ctx.API.UpdatePlant(reqCtx, c.ID, update); err != nil {
		return actionError(err, "Failed to update plant")
	}
	fmt.Println("Plant updated successfully!")
	return nil
}

type PlantDeleteCmd struct {
	ID    int  `arg:"" help:"Plant id."`
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *PlantDeleteCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	plants, err := ctx.API.Plants(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load plants")
	}
	nickname := join.PlantName(c.ID, plants)

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q? This will also delete all associated care logs and care plans.", nickname)).
			Value(&confirmed)
		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.API.DeletePlant(reqCtx, c.ID); err != nil {
		return actionError(err, "Failed to delete plant")
	}
	fmt.Printf("%s deleted successfully!\n", nickname)
	return nil
}
