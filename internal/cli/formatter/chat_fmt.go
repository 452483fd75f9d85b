// Package formatter renders chat output for the terminal: transcript
// lines, the current-question display, and answer fragments.
package formatter

import (
	"fmt"
	"strings"

	"github.com/jorisvermeer/cinebot/internal/catalog"
	"github.com/jorisvermeer/cinebot/internal/dialog"
)

// FormatMessage renders one transcript line tagged with its sender.
func FormatMessage(sender, text string) string {
	style := StyleGreen
	if sender == dialog.SenderBot {
		style = StylePurple
	}
	return style.Render(sender+":") + " " + StyleFg.Render(text)
}

// FormatQuestion renders the current-question display.
func FormatQuestion(text string) string {
	return Header(text)
}

// FormatFragment renders one answer fragment.
func FormatFragment(f dialog.Fragment) string {
	switch f.Kind {
	case dialog.FragmentImage:
		return "  " + Dim("[afbeelding]") + " " + StyleBlue.Render(f.Content)
	case dialog.FragmentPending:
		return "  " + Dim(f.Content)
	default:
		return "  " + StyleFg.Render(f.Content)
	}
}

// FormatLookupResult renders a settled remote fetch. The question text is
// shown dimmed so a result that arrives after later transcript lines is
// still attributable to the question that triggered it.
func FormatLookupResult(question string, f dialog.Fragment) string {
	return Dim("↳ "+question) + "\n" + FormatFragment(f)
}

// FormatQuestionList renders the catalog as a numbered list.
func FormatQuestionList(questions []catalog.Question) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), StyleFg.Render(q.Text))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatShellWelcome renders the banner shown when the chat shell starts.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("CineBot") + "\n")
	b.WriteString(StyleFg.Render("Stel een vraag over de filmdatabase.") + "\n")
	b.WriteString(Dim("Typ 'help' voor de vragenlijst, 'vragen' om te kiezen, 'exit' om te stoppen."))
	return b.String()
}
