// Package testutil provides shared fixtures for tests: a small known
// catalog and a scripted stats client.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jorisvermeer/cinebot/internal/catalog"
	"github.com/jorisvermeer/cinebot/internal/stats"
)

// NewTestCatalog builds a small catalog with one remote-query question,
// one overlapping question for tie-break tests, and one text+image
// question.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Question{
		{
			Text:     "Welk filmgenre heeft gemiddeld de hoogste rating?",
			Keywords: []string{"genre", "rating", "hoogste"},
			Answers:  []catalog.Answer{{Kind: catalog.AnswerRemoteQuery, Payload: "1"}},
		},
		{
			Text:     "Welk filmgenre heeft gemiddeld het hoogste budget?",
			Keywords: []string{"genre", "budget", "hoogste"},
			Answers:  []catalog.Answer{{Kind: catalog.AnswerRemoteQuery, Payload: "4"}},
		},
		{
			Text:     "Hoe ziet het databasemodel eruit?",
			Keywords: []string{"database", "databasemodel", "schema"},
			Answers: []catalog.Answer{
				{Kind: catalog.AnswerText, Payload: "Dit is het databasemodel:"},
				{Kind: catalog.AnswerImage, Payload: "schema.png"},
			},
		},
	})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

// FakeStatsClient is a scripted stats.Client. Answers maps query ids to
// responses; ids without an entry fail with Err. An optional Delay
// simulates a slow service.
type FakeStatsClient struct {
	Answers map[string]string
	Err     error
	Delay   time.Duration

	mu    sync.Mutex
	calls []string
}

func (f *FakeStatsClient) Query(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if text, ok := f.Answers[id]; ok {
		return text, nil
	}
	if f.Err != nil {
		return "", f.Err
	}
	return "", stats.ErrUnavailable
}

func (f *FakeStatsClient) Available(ctx context.Context) bool {
	return f.Err == nil
}

// Calls returns the query ids seen so far, in order.
func (f *FakeStatsClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}
