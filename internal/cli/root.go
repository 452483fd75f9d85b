// Package cli wires the cinebot commands: the one-shot ask command, the
// catalog listing, and the interactive chat shell.
package cli

import (
	"io"
	"os"

	"github.com/jorisvermeer/cinebot/internal/dialog"
	"github.com/spf13/cobra"
)

// App holds everything the CLI commands need.
type App struct {
	Controller *dialog.Controller

	// IsInteractive reports whether stdin is an interactive terminal.
	// When true, running cinebot without arguments starts the chat shell.
	IsInteractive func() bool

	// Out is where non-shell commands write. Defaults to stdout.
	Out io.Writer
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// NewRootCmd creates the top-level "cinebot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cinebot",
		Short: "Chatbot that answers questions about the movie database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newQuestionsCmd(app),
		newShellCmd(app),
	)

	return root
}
