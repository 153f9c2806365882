package tui

import (
	"fmt"
	"strings"

	"verdant/internal/constants"
	"verdant/internal/join"
	"verdant/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		if m.loadErr != "" {
			return m.loadErr + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	if banner := m.bannerView(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	switch {
	case m.mode == modeForm && m.form != nil:
		b.WriteString(m.form.View())
	case m.mode == modeConfirm:
		b.WriteString(m.confirmView())
	case m.loading:
		b.WriteString(mutedStyle.Render("Loading..."))
	case m.loadErr != "":
		b.WriteString(errorBannerStyle.Render(m.loadErr))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to retry."))
	default:
		b.WriteString(m.pageView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) tabBar() string {
	tabs := make([]string, len(pageTitles))
	for i, title := range pageTitles {
		if page(i) == m.page {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) bannerView() string {
	switch m.banner.Status() {
	case StatusSubmitting:
		return mutedStyle.Render("Saving...")
	case StatusSuccess:
		return successBannerStyle.Render(m.banner.Message())
	case StatusFailed:
		return errorBannerStyle.Render(m.banner.Message())
	}
	return ""
}

func (m Model) confirmView() string {
	var prompt string
	switch m.confirm {
	case confirmDeletePlant:
		prompt = fmt.Sprintf("Delete %q? This will also delete all associated care logs and care plans.", m.confirmName)
	case confirmDeletePlan:
		prompt = fmt.Sprintf("Delete %s?", m.confirmName)
	case confirmDeleteType:
		prompt = fmt.Sprintf("Delete care type %q? Care plans using it will keep a dangling reference.", m.confirmName)
	}
	return prompt + "\n\n" + mutedStyle.Render("y: confirm  n: cancel")
}

func (m Model) pageView() string {
	switch m.page {
	case pageDashboard:
		return m.dashboardView()
	case pagePlants:
		return m.plantsView()
	case pagePlans:
		return m.plansView()
	case pageLogCare:
		return m.logCareView()
	case pageTypes:
		return m.typesView()
	case pageSettings:
		return m.settingsView()
	}
	return ""
}

func (m Model) dashboardView() string {
	var b strings.Builder
	d := m.dashboard

	b.WriteString(statRowStyle.Render(fmt.Sprintf("Total Plants: %d", d.TotalPlants)))
	b.WriteString("\n")
	b.WriteString(statRowStyle.Render(fmt.Sprintf("Species Tracked: %d", d.SpeciesTracked)))
	b.WriteString("\n")
	b.WriteString(statRowStyle.Render(fmt.Sprintf("Upcoming (%d days): %d", constants.UpcomingWindowDays, d.UpcomingCount)))
	b.WriteString("\n")
	overdue := fmt.Sprintf("Overdue: %d", d.OverdueCount)
	if d.OverdueCount > 0 {
		b.WriteString(overdueStyle.Render(overdue))
	} else {
		b.WriteString(statRowStyle.Render(overdue))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("Upcoming Care"))
	b.WriteString("\n")
	if len(d.Upcoming) == 0 {
		b.WriteString(mutedStyle.Render("No upcoming care tasks. You're all caught up!"))
	} else {
		b.WriteString(m.upcoming.View())
	}
	return b.String()
}

func (m Model) plantsView() string {
	if len(m.plantPage.Plants) == 0 {
		return mutedStyle.Render("No plants yet. Press a to add your first plant.")
	}
	return m.plants.View()
}

func (m Model) plansView() string {
	var b strings.Builder
	p := m.planPage

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Active Plans (%d)", len(p.Active))))
	b.WriteString("\n")
	if len(p.Active) == 0 {
		b.WriteString(mutedStyle.Render("No active care plans."))
		b.WriteString("\n")
	}
	for i, plan := range p.Active {
		b.WriteString(m.planRow(plan, i == m.planIdx))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Inactive Plans (%d)", len(p.Inactive))))
	b.WriteString("\n")
	if len(p.Inactive) == 0 {
		b.WriteString(mutedStyle.Render("No inactive care plans."))
		b.WriteString("\n")
	}
	for i, plan := range p.Inactive {
		b.WriteString(m.planRow(plan, len(p.Active)+i == m.planIdx))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("a: add  t: toggle active  d: delete"))
	return b.String()
}

func (m Model) planRow(plan models.CarePlan, selected bool) string {
	p := m.planPage
	row := fmt.Sprintf("%s - %s",
		join.PlantName(plan.PlantID, p.Plants),
		join.CareTypeName(plan.CareTypeID, p.CareTypes))
	if plan.FrequencyDays != nil {
		row += " | " + join.FormatFrequency(*plan.FrequencyDays)
	}
	if plan.StartDate != nil {
		row += " | from " + plan.StartDate.Display()
	}
	if plan.Note != "" {
		row += " | " + plan.Note
	}
	if selected {
		return selectedRowStyle.Render("> " + row)
	}
	return "  " + row
}

func (m Model) logCareView() string {
	var b strings.Builder
	p := m.logPage

	b.WriteString(mutedStyle.Render("Press a to log care."))
	b.WriteString("\n\n")
	b.WriteString(sectionTitleStyle.Render("Recent Care Logs"))
	b.WriteString("\n")
	if len(p.RecentLogs) == 0 {
		b.WriteString(mutedStyle.Render("No care logged yet."))
		return b.String()
	}

	shown := p.RecentLogs
	if len(shown) > constants.RecentLogLimit {
		shown = shown[:constants.RecentLogLimit]
	}
	for _, log := range shown {
		row := fmt.Sprintf("%s  %s - %s",
			log.CareDate.Display(),
			join.PlantName(log.PlantID, p.Plants),
			join.CareTypeName(log.CareTypeID, p.CareTypes))
		if log.Note != "" {
			row += " | " + log.Note
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) typesView() string {
	var b strings.Builder
	p := m.typePage

	b.WriteString(sectionTitleStyle.Render("Default Care Types"))
	b.WriteString("\n")
	for _, ct := range p.Defaults {
		row := ct.Name
		if ct.Description != "" {
			row += " | " + ct.Description
		}
		b.WriteString(mutedStyle.Render("  " + row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Your Care Types (%d)", len(p.UserTypes))))
	b.WriteString("\n")
	if len(p.UserTypes) == 0 {
		b.WriteString(mutedStyle.Render("No custom care types yet. Press a to add one."))
		return b.String()
	}
	for i, ct := range p.UserTypes {
		row := ct.Name
		if ct.Description != "" {
			row += " | " + ct.Description
		}
		if i == m.typeIdx {
			b.WriteString(selectedRowStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("a: add  e: edit  d: delete"))
	return b.String()
}

func (m Model) settingsView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Account"))
	b.WriteString("\n")
	b.WriteString(statRowStyle.Render("Username: " + m.user.Username))
	b.WriteString("\n")
	b.WriteString(statRowStyle.Render("Email: " + m.user.Email))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("p: change password"))
	return b.String()
}
