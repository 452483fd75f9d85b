package cli

import (
	"fmt"

	"github.com/jorisvermeer/cinebot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "questions",
		Aliases: []string{"vragen"},
		Short:   "List every question the bot can answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			qs := app.Controller.Catalog().Questions()
			fmt.Fprintln(app.out(), formatter.FormatQuestionList(qs))
			return nil
		},
	}
}
