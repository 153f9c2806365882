package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"verdant/internal/api"
	"verdant/internal/join"
	"verdant/internal/models"
	"verdant/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := m.contentSize()
		m.upcoming.SetSize(w, h)
		m.plants.SetSize(w, h)
		return m, nil

	case bannerExpiredMsg:
		m.banner = m.banner.Expire(msg)
		return m, nil

	case dashboardLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		return m.applyDashboard(msg)

	case plantsLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.loadFailed(msg.err, "Failed to load plants")
		}
		m.plantPage = msg.page
		m.plants.SetPage(msg.page.Plants, msg.page.Species)
		return m, nil

	case plansLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.loadFailed(msg.err, "Failed to load care plans")
		}
		m.planPage = msg.page
		if n := len(msg.page.Active) + len(msg.page.Inactive); m.planIdx >= n {
			m.planIdx = 0
		}
		return m, nil

	case logCareLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.loadFailed(msg.err, "Failed to load data")
		}
		m.logPage = msg.page
		return m, nil

	case typesLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.loadFailed(msg.err, "Failed to load care types")
		}
		m.typePage = msg.page
		if m.typeIdx >= len(msg.page.UserTypes) {
			m.typeIdx = 0
		}
		return m, nil

	case userLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.loadFailed(msg.err, "Failed to load user information")
		}
		m.user = msg.user
		return m, nil

	case mutationDoneMsg:
		return m.applyMutationResult(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m.updateActiveComponent(msg)
}

func (m Model) applyDashboard(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m.loadFailed(msg.err, "Failed to load dashboard")
	}
	m.dashboard = msg.data
	m.upcoming.SetEntries(msg.data.Upcoming)
	return m, nil
}

// loadFailed records a page-load failure. A 401 means the session was already
// cleared by the transport layer; the TUI can only quit back to the shell.
func (m Model) loadFailed(err error, fallback string) (tea.Model, tea.Cmd) {
	if api.IsUnauthorized(err) {
		m.quitting = true
		m.loadErr = "Session expired. Please log in again."
		return m, tea.Quit
	}
	m.loadErr = errorMessage(err, fallback)
	return m, nil
}

func (m Model) applyMutationResult(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			m.quitting = true
			m.loadErr = "Session expired. Please log in again."
			return m, tea.Quit
		}
		m.banner = m.banner.Fail(errorMessage(msg.err, msg.fallback))
		// Failed submissions keep the form open with its input intact so the
		// user can correct and retry.
		if m.formKind != formNone {
			m.mode = modeForm
			m.form = m.rebuildForm()
		}
		return m, nil
	}

	var expire tea.Cmd
	m.banner, expire = m.banner.Succeed(msg.success)
	m.mode = modeBrowse
	m.formKind = formNone
	m.form = nil
	m.confirm = confirmNone

	next, load := m.reloadAfterMutation(msg.reload)
	return next, tea.Batch(expire, load)
}

// reloadAfterMutation re-runs the aggregate load for the page the mutation
// touched. The reload never starts before the mutation is acknowledged; it
// is only issued from a successful mutationDoneMsg.
func (m Model) reloadAfterMutation(p page) (Model, tea.Cmd) {
	m.page = p
	m.generation++
	m.loading = true
	m.loadErr = ""
	return m, m.loadCmd(p)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m.switchPage((m.page + 1) % pageCount)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchPage((m.page - 1 + pageCount) % pageCount)
	case key.Matches(msg, m.keys.Refresh):
		return m.reload()
	}

	switch m.page {
	case pageDashboard:
		if key.Matches(msg, m.keys.MarkDone) && !m.banner.Busy() {
			return m.markSelectedDone()
		}
	case pagePlants:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m.openPlantForm(nil)
		case key.Matches(msg, m.keys.Edit):
			if plant, ok := m.plants.Selected(); ok {
				return m.openPlantForm(&plant)
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if plant, ok := m.plants.Selected(); ok {
				m.mode = modeConfirm
				m.confirm = confirmDeletePlant
				m.confirmID = plant.ID
				m.confirmName = plant.Nickname
			}
			return m, nil
		}
	case pagePlans:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.planIdx > 0 {
				m.planIdx--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.planIdx < len(m.planPage.Active)+len(m.planPage.Inactive)-1 {
				m.planIdx++
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m.openPlanForm()
		case key.Matches(msg, m.keys.Toggle):
			return m.toggleSelectedPlan()
		case key.Matches(msg, m.keys.Delete):
			if plan, ok := m.planAt(m.planIdx); ok {
				m.mode = modeConfirm
				m.confirm = confirmDeletePlan
				m.confirmID = plan.ID
				m.confirmName = fmt.Sprintf("care plan #%d", plan.ID)
			}
			return m, nil
		}
	case pageLogCare:
		if key.Matches(msg, m.keys.Add) {
			return m.openLogForm()
		}
	case pageTypes:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.typeIdx > 0 {
				m.typeIdx--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.typeIdx < len(m.typePage.UserTypes)-1 {
				m.typeIdx++
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m.openTypeForm(nil)
		case key.Matches(msg, m.keys.Edit):
			// Defaults never reach this path: the cursor only covers the
			// user's own types.
			if m.typeIdx < len(m.typePage.UserTypes) {
				ct := m.typePage.UserTypes[m.typeIdx]
				return m.openTypeForm(&ct)
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if m.typeIdx < len(m.typePage.UserTypes) {
				ct := m.typePage.UserTypes[m.typeIdx]
				m.mode = modeConfirm
				m.confirm = confirmDeleteType
				m.confirmID = ct.ID
				m.confirmName = ct.Name
			}
			return m, nil
		}
	case pageSettings:
		if key.Matches(msg, m.keys.Password) {
			m.mode = modeForm
			m.formKind = formPassword
			m.passwordForm = &PasswordFormModel{}
			m.form = newPasswordForm(m.passwordForm)
			m.banner = m.banner.Clear()
			return m, m.form.Init()
		}
	}

	return m.updateActiveComponent(msg)
}

func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == modeForm && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}
	switch m.page {
	case pageDashboard:
		m.upcoming, cmd = m.upcoming.Update(msg)
	case pagePlants:
		m.plants, cmd = m.plants.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.runConfirmedDelete()
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.confirm = confirmNone
		return m, nil
	}
	return m, nil
}

func (m Model) runConfirmedDelete() (tea.Model, tea.Cmd) {
	id := m.confirmID
	name := m.confirmName
	m.banner = m.banner.Submit()
	m.mode = modeBrowse

	switch m.confirm {
	case confirmDeletePlant:
		return m, mutate(
			fmt.Sprintf("%s deleted successfully!", name),
			"Failed to delete plant",
			pagePlants,
			func(ctx context.Context) error { return m.api.DeletePlant(ctx, id) },
		)
	case confirmDeletePlan:
		return m, mutate(
			"Care plan deleted successfully!",
			"Failed to delete care plan",
			pagePlans,
			func(ctx context.Context) error { return m.api.DeleteCarePlan(ctx, id) },
		)
	case confirmDeleteType:
		return m, mutate(
			"Care type deleted successfully!",
			"Failed to delete care type",
			pageTypes,
			func(ctx context.Context) error { return m.api.DeleteCareType(ctx, id) },
		)
	}
	return m, nil
}

func (m Model) markSelectedDone() (tea.Model, tea.Cmd) {
	entry, ok := m.upcoming.Selected()
	if !ok {
		return m, nil
	}
	m.banner = m.banner.Submit()
	return m, mutate(
		"Care logged successfully!",
		"Failed to log care. Please try again.",
		pageDashboard,
		func(ctx context.Context) error {
			// The schedule entry carries a care-type name, not an id; resolve
			// it against the freshly fetched union before logging.
			careTypes, err := m.agg.CareTypes(ctx)
			if err != nil {
				return err
			}
			return m.agg.MarkUpcomingDone(ctx, entry, careTypes)
		},
	)
}

func (m Model) toggleSelectedPlan() (tea.Model, tea.Cmd) {
	plan, ok := m.planAt(m.planIdx)
	if !ok {
		return m, nil
	}
	active := !plan.Active
	m.banner = m.banner.Submit()
	return m, mutate(
		"Care plan updated successfully!",
		"Failed to update care plan",
		pagePlans,
		func(ctx context.Context) error {
			return m.api.UpdateCarePlan(ctx, plan.ID, models.CarePlanUpdate{Active: &active})
		},
	)
}

func (m Model) planAt(idx int) (models.CarePlan, bool) {
	combined := len(m.planPage.Active) + len(m.planPage.Inactive)
	if idx < 0 || idx >= combined {
		return models.CarePlan{}, false
	}
	if idx < len(m.planPage.Active) {
		return m.planPage.Active[idx], true
	}
	return m.planPage.Inactive[idx-len(m.planPage.Active)], true
}

func (m Model) openPlantForm(existing *models.Plant) (tea.Model, tea.Cmd) {
	fm := &PlantFormModel{}
	m.formKind = formAddPlant
	m.editingID = 0
	if existing != nil {
		m.formKind = formEditPlant
		m.editingID = existing.ID
		fm.Nickname = existing.Nickname
		fm.Location = existing.Location
		if existing.SpeciesID != nil {
			fm.SpeciesID = *existing.SpeciesID
		}
		if existing.LastWatered != nil {
			fm.LastWatered = existing.LastWatered.String()
		}
	}
	m.plantForm = fm
	m.form = newPlantForm(fm, m.plantPage.Species)
	m.mode = modeForm
	m.banner = m.banner.Clear()
	return m, m.form.Init()
}

func (m Model) openPlanForm() (tea.Model, tea.Cmd) {
	m.planForm = &PlanFormModel{Active: true}
	m.formKind = formAddPlan
	m.form = newPlanForm(m.planForm, m.planPage.Plants, m.planPage.CareTypes)
	m.mode = modeForm
	m.banner = m.banner.Clear()
	return m, m.form.Init()
}

func (m Model) openLogForm() (tea.Model, tea.Cmd) {
	m.logForm = &LogFormModel{CareDate: models.Today().String()}
	m.formKind = formLogCare
	m.form = newLogForm(m.logForm, m.logPage.Plants, m.logPage.CareTypes)
	m.mode = modeForm
	m.banner = m.banner.Clear()
	return m, m.form.Init()
}

func (m Model) openTypeForm(existing *models.CareType) (tea.Model, tea.Cmd) {
	fm := &TypeFormModel{}
	m.formKind = formAddType
	m.editingID = 0
	if existing != nil {
		m.formKind = formEditType
		m.editingID = existing.ID
		fm.Name = existing.Name
		fm.Description = existing.Description
	}
	m.typeForm = fm
	m.form = newTypeForm(fm)
	m.mode = modeForm
	m.banner = m.banner.Clear()
	return m, m.form.Init()
}

// rebuildForm reconstructs the active huh form from its retained form model,
// used to reopen a form after a failed submission.
func (m Model) rebuildForm() *huh.Form {
	switch m.formKind {
	case formAddPlant, formEditPlant:
		return newPlantForm(m.plantForm, m.plantPage.Species)
	case formAddPlan:
		return newPlanForm(m.planForm, m.planPage.Plants, m.planPage.CareTypes)
	case formLogCare:
		return newLogForm(m.logForm, m.logPage.Plants, m.logPage.CareTypes)
	case formAddType, formEditType:
		return newTypeForm(m.typeForm)
	case formPassword:
		return newPasswordForm(m.passwordForm)
	}
	return nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeBrowse
		m.formKind = formNone
		m.form = nil
		m.banner = m.banner.Clear()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}
	return m.submitForm()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.formKind {
	case formAddPlant:
		return m.submitPlantForm(false)
	case formEditPlant:
		return m.submitPlantForm(true)
	case formAddPlan:
		return m.submitPlanForm()
	case formLogCare:
		return m.submitLogForm()
	case formAddType, formEditType:
		return m.submitTypeForm()
	case formPassword:
		return m.submitPasswordForm()
	}
	return m, nil
}

func (m Model) submitPlantForm(editing bool) (tea.Model, tea.Cmd) {
	fm := m.plantForm
	m.banner = m.banner.Submit()

	if editing {
		id := m.editingID
		update := models.PlantUpdate{Nickname: &fm.Nickname}
		if fm.SpeciesID != 0 {
			speciesID := fm.SpeciesID
			update.SpeciesID = &speciesID
		}
		if fm.Location != "" {
			location := fm.Location
			update.Location = &location
		}
		if fm.LastWatered != "" {
			d, err := models.ParseDate(fm.LastWatered)
			if err != nil {
				m.banner = m.banner.Fail(err.Error())
				m.mode = modeForm
				m.form = m.rebuildForm()
				return m, nil
			}
			update.LastWatered = &d
		}
		return m, mutate(
			"Plant updated successfully!",
			"Failed to update plant",
			pagePlants,
			func(ctx context.Context) error { return m.api.UpdatePlant(ctx, id, update) },
		)
	}

	plant := models.NewPlant{Nickname: fm.Nickname, Location: fm.Location}
	if fm.SpeciesID != 0 {
		speciesID := fm.SpeciesID
		plant.SpeciesID = &speciesID
	}
	if fm.DateAdded != "" {
		if d, err := models.ParseDate(fm.DateAdded); err == nil {
			plant.DateAdded = &d
		}
	}
	if fm.LastWatered != "" {
		if d, err := models.ParseDate(fm.LastWatered); err == nil {
			plant.LastWatered = &d
		}
	}
	return m, mutate(
		"Plant added successfully!",
		"Failed to add plant. Please try again.",
		pagePlants,
		func(ctx context.Context) error {
			_, err := m.api.CreatePlant(ctx, plant)
			return err
		},
	)
}

func (m Model) submitPlanForm() (tea.Model, tea.Cmd) {
	fm := m.planForm
	if err := validation.NewCarePlan(fm.PlantID, fm.CareTypeID); err != nil {
		m.banner = m.banner.Fail(err.Error())
		m.mode = modeForm
		m.form = m.rebuildForm()
		return m, nil
	}
	m.banner = m.banner.Submit()

	plan := models.NewCarePlan{
		PlantID:    fm.PlantID,
		CareTypeID: fm.CareTypeID,
		Note:       fm.Note,
	}
	if fm.StartDate != "" {
		if d, err := models.ParseDate(fm.StartDate); err == nil {
			plan.StartDate = &d
		}
	}
	if fm.FrequencyDays != "" {
		if n, err := strconv.Atoi(fm.FrequencyDays); err == nil {
			plan.FrequencyDays = &n
		}
	}
	if !fm.Active {
		active := false
		plan.Active = &active
	}
	return m, mutate(
		"Care plan created successfully!",
		"Failed to create care plan. Please try again.",
		pagePlans,
		func(ctx context.Context) error { return m.api.CreateCarePlan(ctx, plan) },
	)
}

func (m Model) submitLogForm() (tea.Model, tea.Cmd) {
	fm := m.logForm
	if len(fm.PlantIDs) == 0 || fm.CareTypeID == 0 {
		m.banner = m.banner.Fail("Please select at least one plant and a care type")
		m.mode = modeForm
		m.form = m.rebuildForm()
		return m, nil
	}
	m.banner = m.banner.Submit()

	if len(fm.PlantIDs) > 1 {
		plantIDs := fm.PlantIDs
		careTypeID := fm.CareTypeID
		note := fm.Note
		count := len(plantIDs)
		return m, mutate(
			fmt.Sprintf("Care logged for %d %s!", count, join.Pluralize(count, "plant")),
			"Failed to log care for some plants. Please try again.",
			pageLogCare,
			func(ctx context.Context) error {
				return m.agg.LogCareForPlants(ctx, plantIDs, careTypeID, note)
			},
		)
	}

	log := models.NewCareLog{
		PlantID:    fm.PlantIDs[0],
		CareTypeID: fm.CareTypeID,
		Note:       fm.Note,
	}
	if fm.CareDate != "" {
		if d, err := models.ParseDate(fm.CareDate); err == nil {
			log.CareDate = &d
		}
	}
	return m, mutate(
		"Care logged successfully!",
		"Failed to log care. Please try again.",
		pageLogCare,
		func(ctx context.Context) error { return m.api.CreateCareLog(ctx, log) },
	)
}

func (m Model) submitTypeForm() (tea.Model, tea.Cmd) {
	fm := m.typeForm
	editing := m.formKind == formEditType
	m.banner = m.banner.Submit()

	if editing {
		id := m.editingID
		update := models.CareTypeUpdate{Name: &fm.Name}
		if fm.Description != "" {
			description := fm.Description
			update.Description = &description
		}
		return m, mutate(
			"Care type updated successfully!",
			"Failed to update care type",
			pageTypes,
			func(ctx context.Context) error { return m.api.UpdateCareType(ctx, id, update) },
		)
	}

	careType := models.NewCareType{Name: fm.Name, Description: fm.Description}
	return m, mutate(
		"Care type added successfully!",
		"Failed to create care type",
		pageTypes,
		func(ctx context.Context) error { return m.api.CreateCareType(ctx, careType) },
	)
}

func (m Model) submitPasswordForm() (tea.Model, tea.Cmd) {
	fm := m.passwordForm
	if err := validation.PasswordChange(fm.Old, fm.New, fm.Confirm); err != nil {
		m.banner = m.banner.Fail(err.Error())
		m.mode = modeForm
		m.form = m.rebuildForm()
		return m, nil
	}

	email := m.session.Current().User.Email
	if email == "" {
		email = m.user.Email
	}
	if email == "" {
		m.banner = m.banner.Fail("User email not found. Please refresh the page.")
		m.mode = modeForm
		m.form = m.rebuildForm()
		return m, nil
	}
	m.banner = m.banner.Submit()

	change := models.PasswordChange{
		Email:           email,
		OldPassword:     fm.Old,
		NewPassword:     fm.New,
		ConfirmPassword: fm.Confirm,
	}
	return m, mutate(
		"Password changed successfully!",
		"Failed to change password",
		pageSettings,
		func(ctx context.Context) error { return m.api.ChangePassword(ctx, change) },
	)
}
