package match

import (
	"strings"

	"github.com/jorisvermeer/cinebot/internal/catalog"
)

// Match selects the catalog question whose keyword set overlaps the input
// the most. The input must already be normalized.
//
// Scoring: the input is split on whitespace and every token occurrence
// that is a member of a question's keyword set counts as one hit, so a
// token repeated in the input scores once per occurrence. The question
// with the strictly highest score wins; on a tie the earliest question in
// catalog order is kept, which lets catalog authors rank more specific
// questions first. A best score of zero means no signal at all, so
// ok is false and the caller should treat the input as unknown.
func Match(input string, c *catalog.Catalog) (*catalog.Question, bool) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, false
	}

	questions := c.Questions()
	best := -1
	bestScore := 0

	for i := range questions {
		score := Score(tokens, &questions[i])
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return nil, false
	}
	return &questions[best], true
}

// Score counts how many of the given tokens are members of the question's
// keyword set, counting repeated tokens once per occurrence.
func Score(tokens []string, q *catalog.Question) int {
	n := 0
	for _, tok := range tokens {
		if q.HasKeyword(tok) {
			n++
		}
	}
	return n
}
