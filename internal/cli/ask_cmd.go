package cli

import (
	"context"
	"fmt"

	"github.com/jorisvermeer/cinebot/internal/cli/formatter"
	"github.com/jorisvermeer/cinebot/internal/dialog"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ask "<vraag>"`,
		Short: "Ask one question and print the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(app, args[0])
		},
	}
	return cmd
}

// runAsk performs a single question/answer cycle. Synchronous output is
// printed immediately; remote lookups run concurrently and their results
// are printed in settlement order. All lookups belong to this one cycle,
// so no stale-result handling is needed here.
func runAsk(app *App, input string) error {
	out := app.out()

	p := &transcriptPresenter{}
	reply := app.Controller.Submit(p, input)
	if rendered := p.String(); rendered != "" {
		fmt.Fprintln(out, rendered)
	}

	if len(reply.Lookups) == 0 {
		return nil
	}

	type settled struct {
		lookup   dialog.Lookup
		fragment dialog.Fragment
	}
	results := make(chan settled, len(reply.Lookups))
	for _, lk := range reply.Lookups {
		go func(lk dialog.Lookup) {
			results <- settled{lookup: lk, fragment: app.Controller.Fetch(context.Background(), lk)}
		}(lk)
	}

	for range reply.Lookups {
		s := <-results
		fmt.Fprintln(out, formatter.FormatLookupResult(s.lookup.Question, s.fragment))
	}

	return nil
}
