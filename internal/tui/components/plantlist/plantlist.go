package plantlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"verdant/internal/join"
	"verdant/internal/models"
)

type Item struct {
	Plant   models.Plant
	Species []models.Species
}

func (i Item) Title() string { return i.Plant.Nickname }

func (i Item) Description() string {
	desc := ""
	switch species, ref := join.SpeciesForPlant(i.Plant, i.Species); ref {
	case join.SpeciesFound:
		desc = species.CommonName
	case join.SpeciesMissing:
		desc = fmt.Sprintf("species #%d (not found)", *i.Plant.SpeciesID)
	case join.SpeciesNone:
		desc = "no species set"
	}
	if i.Plant.Location != "" {
		desc += " | " + i.Plant.Location
	}
	if i.Plant.LastWatered != nil {
		desc += " | watered " + i.Plant.LastWatered.Display()
	}
	return desc
}

func (i Item) FilterValue() string { return i.Plant.Nickname }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add plant"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Plants"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}
	return Model{list: l, keys: keys}
}

// SetPage replaces the listed plants and their species catalog.
func (m *Model) SetPage(plants []models.Plant, species []models.Species) {
	items := make([]list.Item, len(plants))
	for i, p := range plants {
		items[i] = Item{Plant: p, Species: species}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the plant under the cursor.
func (m Model) Selected() (models.Plant, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Plant{}, false
	}
	return item.Plant, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
