package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"verdant/internal/aggregate"
	"verdant/internal/api"
	"verdant/internal/models"
	"verdant/internal/session"
	"verdant/internal/tui/components/plantlist"
	"verdant/internal/tui/components/schedule"
)

type page int

const (
	pageDashboard page = iota
	pagePlants
	pagePlans
	pageLogCare
	pageTypes
	pageSettings
	pageCount
)

var pageTitles = []string{"Dashboard", "Plants", "Care Plans", "Log Care", "Care Types", "Settings"}

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
)

type formKind int

const (
	formNone formKind = iota
	formAddPlant
	formEditPlant
	formAddPlan
	formLogCare
	formAddType
	formEditType
	formPassword
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeletePlant
	confirmDeletePlan
	confirmDeleteType
)

type Model struct {
	api     *api.Client
	agg     *aggregate.Service
	session *session.Store

	page       page
	mode       mode
	keys       KeyMap
	help       help.Model
	banner     Banner
	width      int
	height     int
	loading    bool
	generation int
	quitting   bool
	loadErr    string

	// Per-page snapshots, replaced wholesale on every reload.
	dashboard aggregate.DashboardData
	upcoming  schedule.Model
	plantPage aggregate.PlantPage
	plants    plantlist.Model
	planPage  aggregate.CarePlanPage
	planIdx   int
	logPage   aggregate.LogCarePage
	typePage  aggregate.CareTypePage
	typeIdx   int
	user      models.User

	form         *huh.Form
	formKind     formKind
	plantForm    *PlantFormModel
	planForm     *PlanFormModel
	logForm      *LogFormModel
	typeForm     *TypeFormModel
	passwordForm *PasswordFormModel
	editingID    int

	confirm     confirmKind
	confirmID   int
	confirmName string
}

func NewModel(client *api.Client, agg *aggregate.Service, store *session.Store) Model {
	return Model{
		api:      client,
		agg:      agg,
		session:  store,
		page:     pageDashboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		upcoming: schedule.New(0, 0),
		plants:   plantlist.New(0, 0),
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd(pageDashboard)
}

// switchPage navigates to p, invalidating in-flight loads for the page being
// left and kicking off a fresh load.
func (m Model) switchPage(p page) (Model, tea.Cmd) {
	m.page = p
	m.mode = modeBrowse
	m.generation++
	m.loading = true
	m.loadErr = ""
	m.banner = m.banner.Clear()
	return m, m.loadCmd(p)
}

// reload re-runs the current page's aggregate load from scratch.
func (m Model) reload() (Model, tea.Cmd) {
	m.generation++
	m.loading = true
	m.loadErr = ""
	return m, m.loadCmd(m.page)
}

func (m *Model) contentSize() (int, int) {
	// Tabs, banner, and help each take a line plus padding.
	h := m.height - 6
	if h < 4 {
		h = 4
	}
	return m.width, h
}
