package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weathercard/backend/internal/service"
)

// Run starts the interactive widget and blocks until the user quits
func Run(ctx context.Context, search *service.SearchController, theme *service.ThemeService) error {
	p := tea.NewProgram(New(ctx, search, theme), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
