package cli

import (
	"strings"

	"github.com/jorisvermeer/cinebot/internal/cli/formatter"
	"github.com/jorisvermeer/cinebot/internal/dialog"
)

// transcriptPresenter collects one cycle's push events as rendered lines.
// The chat surface is an append-only scrollback, so ClearOutput is a
// visual no-op here: a new answer simply follows the old one.
type transcriptPresenter struct {
	b strings.Builder
}

func (p *transcriptPresenter) AppendMessage(sender, text string) {
	p.b.WriteString(formatter.FormatMessage(sender, text) + "\n")
}

func (p *transcriptPresenter) ShowQuestion(text string) {
	p.b.WriteString(formatter.FormatQuestion(text) + "\n")
}

func (p *transcriptPresenter) ClearOutput() {}

func (p *transcriptPresenter) AppendFragment(f dialog.Fragment) {
	p.b.WriteString(formatter.FormatFragment(f) + "\n")
}

// String returns the collected output without the trailing newline.
func (p *transcriptPresenter) String() string {
	return strings.TrimRight(p.b.String(), "\n")
}
