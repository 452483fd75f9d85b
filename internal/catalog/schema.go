package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// catalogSchema is the top-level JSON structure of a catalog file.
type catalogSchema struct {
	Questions []questionSchema `json:"questions"`
}

// questionSchema defines one question record in the catalog file.
type questionSchema struct {
	Text     string         `json:"text"`
	Keywords []string       `json:"keywords"`
	Answers  []answerSchema `json:"answers"`
}

// answerSchema defines one answer record in the catalog file.
type answerSchema struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

// ValidationError aggregates every structural problem found in a catalog.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "invalid catalog: " + strings.Join(msgs, "; ")
}

// Load reads and parses a catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a validated Catalog from raw catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	var schema catalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	questions := make([]Question, 0, len(schema.Questions))
	for _, qs := range schema.Questions {
		answers := make([]Answer, 0, len(qs.Answers))
		for _, as := range qs.Answers {
			answers = append(answers, Answer{Kind: AnswerKind(as.Kind), Payload: as.Payload})
		}
		questions = append(questions, Question{
			Text:     qs.Text,
			Keywords: qs.Keywords,
			Answers:  answers,
		})
	}

	return New(questions)
}

func validateQuestions(questions []Question) []error {
	var errs []error

	if len(questions) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no questions"))
	}

	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		if q.Text == "" {
			errs = append(errs, fmt.Errorf("%s: text is required", prefix))
		}
		if len(q.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("%s: keyword set must not be empty", prefix))
		}
		for j, kw := range q.Keywords {
			if kw == "" {
				errs = append(errs, fmt.Errorf("%s.keywords[%d]: empty keyword", prefix, j))
			} else if kw != strings.ToLower(kw) {
				errs = append(errs, fmt.Errorf("%s.keywords[%d]: keyword %q must be lowercase", prefix, j, kw))
			}
		}
		if len(q.Answers) == 0 {
			errs = append(errs, fmt.Errorf("%s: answer list must not be empty", prefix))
		}
		for j, a := range q.Answers {
			if !a.Kind.Valid() {
				errs = append(errs, fmt.Errorf("%s.answers[%d]: unknown kind %q", prefix, j, a.Kind))
			}
			if a.Payload == "" {
				errs = append(errs, fmt.Errorf("%s.answers[%d]: payload is required", prefix, j))
			}
		}
	}

	return errs
}
