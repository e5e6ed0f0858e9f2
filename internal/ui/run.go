package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/roshambo/internal/game"
	"github.com/DaanHessen/roshambo/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, g *game.Game, cfg util.Config, version string) error {
	m := initialModel(g, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
