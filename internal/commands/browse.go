package commands

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/stahnma/gh-devfinder/internal/tui"
)

func (a *App) newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively search and browse GitHub developers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd)
		},
	}
}

func (a *App) runBrowse(cmd *cobra.Command) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("browse requires an interactive terminal")
	}
	if err := a.ensureFinder(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := tui.New(ctx, a.Finder, a.Finder.Store())
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
