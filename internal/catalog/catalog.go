// Package catalog holds the fixed knowledge base of the bot: an ordered
// list of questions, each with a keyword set and an ordered answer list.
// The catalog is loaded once at startup and is immutable at runtime.
package catalog

// Catalog is the ordered, immutable set of known questions. Order matters:
// it is the tie-break used by the matcher, so more specific questions
// should come first when keyword sets overlap.
type Catalog struct {
	questions []Question
}

// New builds a Catalog from the given questions after validating the
// structural invariants (non-empty keywords and answers, known answer
// kinds). Malformed entries are a configuration defect, so all violations
// are reported at once rather than stopping at the first.
func New(questions []Question) (*Catalog, error) {
	if errs := validateQuestions(questions); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	for i := range qs {
		qs[i].buildKeywordSet()
	}
	return &Catalog{questions: qs}, nil
}

// Questions returns the questions in catalog order. The returned slice
// must not be modified.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
