package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"verdant/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	model := tui.NewModel(ctx.API, ctx.Agg, ctx.Session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
