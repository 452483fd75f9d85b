package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() Question {
	return Question{
		Text:     "Welk filmgenre heeft gemiddeld de hoogste rating?",
		Keywords: []string{"genre", "rating"},
		Answers:  []Answer{{Kind: AnswerRemoteQuery, Payload: "1"}},
	}
}

func TestNew_ValidCatalog(t *testing.T) {
	c, err := New([]Question{validQuestion()})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "Welk filmgenre heeft gemiddeld de hoogste rating?", c.Questions()[0].Text)
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr string
	}{
		{
			name:    "empty keywords",
			mutate:  func(q *Question) { q.Keywords = nil },
			wantErr: "keyword set must not be empty",
		},
		{
			name:    "empty answers",
			mutate:  func(q *Question) { q.Answers = nil },
			wantErr: "answer list must not be empty",
		},
		{
			name:    "unknown answer kind",
			mutate:  func(q *Question) { q.Answers = []Answer{{Kind: "sql", Payload: "1"}} },
			wantErr: `unknown kind "sql"`,
		},
		{
			name:    "missing payload",
			mutate:  func(q *Question) { q.Answers = []Answer{{Kind: AnswerText}} },
			wantErr: "payload is required",
		},
		{
			name:    "missing text",
			mutate:  func(q *Question) { q.Text = "" },
			wantErr: "text is required",
		},
		{
			name:    "uppercase keyword",
			mutate:  func(q *Question) { q.Keywords = []string{"Genre"} },
			wantErr: "must be lowercase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			_, err := New([]Question{q})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_ReportsAllViolationsAtOnce(t *testing.T) {
	q := validQuestion()
	q.Keywords = nil
	q.Answers = nil

	_, err := New([]Question{q})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errs, 2)
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions")
}

func TestParse_CatalogFile(t *testing.T) {
	data := []byte(`{
		"questions": [
			{
				"text": "Hoe ziet het databasemodel eruit?",
				"keywords": ["database", "schema"],
				"answers": [
					{"kind": "text", "payload": "Dit is het model:"},
					{"kind": "image", "payload": "schema.png"}
				]
			}
		]
	}`)

	c, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	q := c.Questions()[0]
	require.Len(t, q.Answers, 2)
	assert.Equal(t, AnswerText, q.Answers[0].Kind)
	assert.Equal(t, AnswerImage, q.Answers[1].Kind)
	assert.Equal(t, "schema.png", q.Answers[1].Payload)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestHasKeyword(t *testing.T) {
	c, err := New([]Question{validQuestion()})
	require.NoError(t, err)

	q := c.Questions()[0]
	assert.True(t, q.HasKeyword("genre"))
	assert.True(t, q.HasKeyword("rating"))
	assert.False(t, q.HasKeyword("budget"))
	assert.False(t, q.HasKeyword("Genre"))
}

func TestDefault_ContainsShippedQuestions(t *testing.T) {
	c := Default()
	require.GreaterOrEqual(t, c.Len(), 6)

	// The five movie statistics questions resolve remotely.
	remote := 0
	for _, q := range c.Questions() {
		for _, a := range q.Answers {
			if a.Kind == AnswerRemoteQuery {
				remote++
			}
		}
	}
	assert.Equal(t, 5, remote)

	// The schema question ships a text and an image answer.
	last := c.Questions()[c.Len()-1]
	require.Len(t, last.Answers, 2)
	assert.Equal(t, AnswerText, last.Answers[0].Kind)
	assert.Equal(t, AnswerImage, last.Answers[1].Kind)
}
