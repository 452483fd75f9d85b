package catalog

// AnswerKind discriminates how an Answer's payload must be interpreted.
type AnswerKind string

const (
	// AnswerText is a literal string shown as-is.
	AnswerText AnswerKind = "text"
	// AnswerImage is an image path resolved against the image base path.
	AnswerImage AnswerKind = "image"
	// AnswerRemoteQuery is a query identifier answered by the stats service.
	AnswerRemoteQuery AnswerKind = "query"
)

// ValidAnswerKinds is the canonical set of accepted answer kind strings.
var ValidAnswerKinds = map[AnswerKind]bool{
	AnswerText: true, AnswerImage: true, AnswerRemoteQuery: true,
}

// Valid returns true if the kind is one of the known answer kinds.
func (k AnswerKind) Valid() bool {
	return ValidAnswerKinds[k]
}

// Answer is a single element of a question's answer list.
// Payload meaning depends entirely on Kind.
type Answer struct {
	Kind    AnswerKind
	Payload string
}

// Question is one entry of the catalog: the canonical question text, the
// keyword set used for matching, and the ordered answers rendered when
// the question is selected. Questions are built once at catalog load time
// and never mutated afterwards.
type Question struct {
	Text     string
	Keywords []string
	Answers  []Answer

	keywordSet map[string]bool
}

// HasKeyword reports whether token is a member of the question's keyword set.
// Tokens are expected to be normalized (lowercase) already.
func (q *Question) HasKeyword(token string) bool {
	return q.keywordSet[token]
}

func (q *Question) buildKeywordSet() {
	q.keywordSet = make(map[string]bool, len(q.Keywords))
	for _, kw := range q.Keywords {
		q.keywordSet[kw] = true
	}
}
