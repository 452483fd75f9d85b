// Package dialog orchestrates one question/answer cycle: it normalizes
// the input, applies the intent shortcuts (empty, help, greeting), asks
// the matcher for the best catalog question, and resolves that question's
// answers into fragments pushed through the Presenter.
//
// A cycle is fully synchronous except for remote-query answers: those
// render a placeholder fragment immediately and hand the caller a Lookup
// to execute on its own schedule, so one slow fetch never blocks the rest
// of the answer list. Every cycle is tagged with a fresh ID; a settled
// Lookup carries the ID of the cycle that spawned it, which lets the
// caller drop results that arrive after a newer submission has replaced
// the output area.
package dialog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jorisvermeer/cinebot/internal/catalog"
	"github.com/jorisvermeer/cinebot/internal/match"
	"github.com/jorisvermeer/cinebot/internal/stats"
)

// ReplyKind classifies the outcome of one submission cycle.
type ReplyKind string

const (
	// ReplySilent means the input was empty and nothing was emitted.
	ReplySilent ReplyKind = "silent"
	// ReplyHelp means the help listing was emitted.
	ReplyHelp ReplyKind = "help"
	// ReplyGreeting means the canned greeting was emitted.
	ReplyGreeting ReplyKind = "greeting"
	// ReplyNoMatch means no catalog question scored above zero.
	ReplyNoMatch ReplyKind = "no_match"
	// ReplyAnswer means a question matched and its answers were resolved.
	ReplyAnswer ReplyKind = "answer"
)

// Lookup is a remote fetch spawned by a cycle, bound to that cycle's ID
// so a late result can be attributed to the question that triggered it.
type Lookup struct {
	Cycle    uuid.UUID
	QueryID  string
	Question string
}

// Reply describes what a submission produced. Lookups, if any, are still
// outstanding when Submit returns.
type Reply struct {
	Cycle    uuid.UUID
	Kind     ReplyKind
	Question *catalog.Question
	Lookups  []Lookup
}

// Controller runs submission cycles against an immutable catalog. It
// holds no per-cycle state: every Submit starts from Idle and returns to
// Idle, and nothing is remembered across turns.
type Controller struct {
	catalog   *catalog.Catalog
	stats     stats.Client
	imageBase string
}

// NewController creates a Controller. imageBase is the base path
// prepended to image answer payloads.
func NewController(c *catalog.Catalog, client stats.Client, imageBase string) *Controller {
	return &Controller{
		catalog:   c,
		stats:     client,
		imageBase: imageBase,
	}
}

// Catalog returns the catalog the controller answers from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Submit runs one full cycle for a raw input line. All synchronous output
// (transcript lines, question display, text and image fragments, pending
// placeholders) is pushed to the presenter before Submit returns; remote
// fetches are returned as Lookups for the caller to execute.
func (c *Controller) Submit(p Presenter, raw string) Reply {
	input := match.Normalize(raw)

	// Shortcut order: empty, help, greeting. Only then match.
	if strings.TrimSpace(input) == "" {
		return Reply{Kind: ReplySilent}
	}

	p.AppendMessage(SenderUser, raw)

	if input == helpCommand {
		c.pushHelp(p)
		return Reply{Kind: ReplyHelp}
	}

	if greetings[input] {
		p.AppendMessage(SenderBot, MsgGreeting)
		return Reply{Kind: ReplyGreeting}
	}

	q, ok := match.Match(input, c.catalog)
	if !ok {
		p.AppendMessage(SenderBot, MsgNoMatch)
		p.ClearOutput()
		return Reply{Kind: ReplyNoMatch}
	}

	reply := c.resolve(p, q)
	p.AppendMessage(SenderBot, MsgHandOff)
	return reply
}

// resolve renders a matched question's answers in list order. Text and
// image answers become fragments immediately; remote-query answers become
// a pending placeholder plus a Lookup.
func (c *Controller) resolve(p Presenter, q *catalog.Question) Reply {
	cycle := uuid.New()

	p.ClearOutput()
	p.ShowQuestion(q.Text)

	var lookups []Lookup
	for _, a := range q.Answers {
		switch a.Kind {
		case catalog.AnswerText:
			p.AppendFragment(Fragment{Kind: FragmentText, Content: a.Payload})
		case catalog.AnswerImage:
			p.AppendFragment(Fragment{Kind: FragmentImage, Content: c.imageBase + a.Payload})
		case catalog.AnswerRemoteQuery:
			p.AppendFragment(Fragment{Kind: FragmentPending, Content: MsgFetching})
			lookups = append(lookups, Lookup{
				Cycle:    cycle,
				QueryID:  a.Payload,
				Question: q.Text,
			})
		}
	}

	return Reply{
		Cycle:    cycle,
		Kind:     ReplyAnswer,
		Question: q,
		Lookups:  lookups,
	}
}

// Fetch executes one Lookup against the stats service and returns the
// fragment to render in place of its placeholder. A failed fetch is
// recovered here: it yields the fixed error fragment and never an error,
// so one broken query cannot abort the rest of the answer list.
func (c *Controller) Fetch(ctx context.Context, lk Lookup) Fragment {
	text, err := c.stats.Query(ctx, lk.QueryID)
	if err != nil {
		return Fragment{Kind: FragmentText, Content: MsgFetchError}
	}
	return Fragment{Kind: FragmentText, Content: text}
}

func (c *Controller) pushHelp(p Presenter) {
	p.AppendMessage(SenderBot, MsgHelpIntro)
	p.AppendMessage(SenderBot, HelpDivider)
	for _, q := range c.catalog.Questions() {
		p.AppendMessage(SenderBot, "- "+q.Text)
	}
	p.AppendMessage(SenderBot, HelpDivider)
}
