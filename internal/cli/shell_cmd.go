package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive chat shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunShell(app)
		},
	}
}

// RunShell starts the bubbletea chat shell and blocks until it exits.
func RunShell(app *App) error {
	p := tea.NewProgram(newShellModel(app))
	_, err := p.Run()
	return err
}
