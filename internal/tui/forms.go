package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"verdant/internal/models"
)

type PlantFormModel struct {
	Nickname    string
	SpeciesID   int // 0 means none
	Location    string
	DateAdded   string
	LastWatered string
}

type PlanFormModel struct {
	PlantID       int
	CareTypeID    int
	StartDate     string
	FrequencyDays string
	Note          string
	Active        bool
}

type LogFormModel struct {
	PlantIDs   []int
	CareTypeID int
	CareDate   string
	Note       string
}

type TypeFormModel struct {
	Name        string
	Description string
}

type PasswordFormModel struct {
	Old     string
	New     string
	Confirm string
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := models.ParseDate(s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func plantOptions(plants []models.Plant) []huh.Option[int] {
	opts := make([]huh.Option[int], len(plants))
	for i, p := range plants {
		opts[i] = huh.NewOption(p.Nickname, p.ID)
	}
	return opts
}

func careTypeOptions(careTypes []models.CareType) []huh.Option[int] {
	opts := make([]huh.Option[int], len(careTypes))
	for i, ct := range careTypes {
		opts[i] = huh.NewOption(ct.Name, ct.ID)
	}
	return opts
}

func speciesOptions(species []models.Species) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(species)+1)
	opts = append(opts, huh.NewOption("(none)", 0))
	for _, s := range species {
		opts = append(opts, huh.NewOption(s.CommonName, s.ID))
	}
	return opts
}

func newPlantForm(fm *PlantFormModel, species []models.Species) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nickname").
				Value(&fm.Nickname).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("Plant nickname is required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Species").
				Options(speciesOptions(species)...).
				Value(&fm.SpeciesID),
			huh.NewInput().
				Title("Location").
				Value(&fm.Location),
			huh.NewInput().
				Title("Date added (YYYY-MM-DD)").
				Value(&fm.DateAdded).
				Validate(validateDate),
			huh.NewInput().
				Title("Last watered (YYYY-MM-DD)").
				Value(&fm.LastWatered).
				Validate(validateDate),
		),
	)
}

func newPlanForm(fm *PlanFormModel, plants []models.Plant, careTypes []models.CareType) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Plant").
				Options(plantOptions(plants)...).
				Value(&fm.PlantID),
			huh.NewSelect[int]().
				Title("Care type").
				Options(careTypeOptions(careTypes)...).
				Value(&fm.CareTypeID),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&fm.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Frequency (days)").
				Value(&fm.FrequencyDays).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("frequency must be a positive number of days")
					}
					return nil
				}),
			huh.NewInput().
				Title("Note").
				Value(&fm.Note),
			huh.NewConfirm().
				Title("Active").
				Value(&fm.Active),
		),
	)
}

func newLogForm(fm *LogFormModel, plants []models.Plant, careTypes []models.CareType) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Plants").
				Options(plantOptions(plants)...).
				Value(&fm.PlantIDs).
				Validate(func(ids []int) error {
					if len(ids) == 0 {
						return fmt.Errorf("Please select at least one plant and a care type")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Care type").
				Options(careTypeOptions(careTypes)...).
				Value(&fm.CareTypeID),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.CareDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&fm.Note),
		),
	)
}

func newTypeForm(fm *TypeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("Name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	)
}

func newPasswordForm(fm *PasswordFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Old),
			huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.New),
			huh.NewInput().
				Title("Confirm new password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Confirm),
		),
	)
}
