package schedule

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"verdant/internal/join"
	"verdant/internal/models"
)

type Item struct {
	Entry models.UpcomingCareLog
	Today models.Date
}

func (i Item) Title() string {
	return fmt.Sprintf("%s - %s", i.Entry.PlantNickname, i.Entry.CareType)
}

func (i Item) Description() string {
	desc := "Due " + i.Entry.DueDate.Display()
	if join.IsOverdue(i.Entry.DueDate, i.Today) {
		desc += " (overdue)"
	}
	if i.Entry.Note != "" {
		desc += " | " + i.Entry.Note
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.PlantNickname }

type KeyMap struct {
	MarkDone key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		MarkDone: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
	}
}

// Model lists the server-computed upcoming care entries.
type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Upcoming Care"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.MarkDone}
	}
	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.UpcomingCareLog) {
	today := models.Today()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e, Today: today}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (models.UpcomingCareLog, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.UpcomingCareLog{}, false
	}
	return item.Entry, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
