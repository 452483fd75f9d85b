package dialog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jorisvermeer/cinebot/internal/catalog"
	"github.com/jorisvermeer/cinebot/internal/stats"
	"github.com/jorisvermeer/cinebot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures every push event in arrival order.
type recordingPresenter struct {
	events    []string
	fragments []Fragment
}

func (p *recordingPresenter) AppendMessage(sender, text string) {
	p.events = append(p.events, fmt.Sprintf("msg %s: %s", sender, text))
}

func (p *recordingPresenter) ShowQuestion(text string) {
	p.events = append(p.events, "question "+text)
}

func (p *recordingPresenter) ClearOutput() {
	p.events = append(p.events, "clear")
}

func (p *recordingPresenter) AppendFragment(f Fragment) {
	p.events = append(p.events, fmt.Sprintf("fragment %s: %s", f.Kind, f.Content))
	p.fragments = append(p.fragments, f)
}

func testController(t *testing.T, client stats.Client) *Controller {
	t.Helper()
	if client == nil {
		client = &testutil.FakeStatsClient{Answers: map[string]string{
			"1": "Drama heeft gemiddeld de hoogste rating.",
			"4": "Avontuur heeft gemiddeld het hoogste budget.",
		}}
	}
	return NewController(testutil.NewTestCatalog(t), client, "images/")
}

func TestSubmit_EmptyInputIsSilent(t *testing.T) {
	c := testController(t, nil)
	p := &recordingPresenter{}

	reply := c.Submit(p, "")
	assert.Equal(t, ReplySilent, reply.Kind)
	assert.Empty(t, p.events)

	reply = c.Submit(p, "???  ")
	assert.Equal(t, ReplySilent, reply.Kind)
	assert.Empty(t, p.events)
}

func TestSubmit_HelpListsEveryQuestion(t *testing.T) {
	c := testController(t, nil)
	p := &recordingPresenter{}

	reply := c.Submit(p, "HELP?")
	assert.Equal(t, ReplyHelp, reply.Kind)

	require.Len(t, p.events, 8) // user echo, intro, divider, 3 questions, divider
	assert.Equal(t, "msg Ik: HELP?", p.events[0])
	assert.Equal(t, "msg CineBot: "+MsgHelpIntro, p.events[1])
	assert.Equal(t, "msg CineBot: "+HelpDivider, p.events[2])
	assert.Contains(t, p.events[3], "Welk filmgenre heeft gemiddeld de hoogste rating?")
	assert.Equal(t, "msg CineBot: "+HelpDivider, p.events[7])
}

func TestSubmit_GreetingIsExactWholeInputMatch(t *testing.T) {
	c := testController(t, nil)

	tests := []struct {
		input string
		want  ReplyKind
	}{
		{"hallo", ReplyGreeting},
		{"Hallo?", ReplyGreeting},
		{"goedemiddag", ReplyGreeting},
		{"hallo daar", ReplyNoMatch},
		{"hoi iedereen", ReplyNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := &recordingPresenter{}
			reply := c.Submit(p, tt.input)
			assert.Equal(t, tt.want, reply.Kind)
			if tt.want == ReplyGreeting {
				assert.Contains(t, p.events, "msg CineBot: "+MsgGreeting)
			}
		})
	}
}

func TestSubmit_NoMatchClearsOutput(t *testing.T) {
	c := testController(t, nil)
	p := &recordingPresenter{}

	reply := c.Submit(p, "hoeveel manen heeft jupiter")
	assert.Equal(t, ReplyNoMatch, reply.Kind)
	assert.Equal(t, []string{
		"msg Ik: hoeveel manen heeft jupiter",
		"msg CineBot: " + MsgNoMatch,
		"clear",
	}, p.events)
}

func TestSubmit_MatchedQuestionRendersInOrder(t *testing.T) {
	c := testController(t, nil)
	p := &recordingPresenter{}

	reply := c.Submit(p, "hoe ziet het databasemodel eruit?")
	require.Equal(t, ReplyAnswer, reply.Kind)
	require.NotNil(t, reply.Question)
	assert.Empty(t, reply.Lookups)

	assert.Equal(t, []string{
		"msg Ik: hoe ziet het databasemodel eruit?",
		"clear",
		"question Hoe ziet het databasemodel eruit?",
		"fragment text: Dit is het databasemodel:",
		"fragment image: images/schema.png",
		"msg CineBot: " + MsgHandOff,
	}, p.events)
}

func TestSubmit_RemoteQuerySpawnsLookupWithPlaceholder(t *testing.T) {
	c := testController(t, nil)
	p := &recordingPresenter{}

	reply := c.Submit(p, "welk genre heeft de hoogste rating?")
	require.Equal(t, ReplyAnswer, reply.Kind)
	require.Len(t, reply.Lookups, 1)

	lk := reply.Lookups[0]
	assert.Equal(t, "1", lk.QueryID)
	assert.Equal(t, reply.Cycle, lk.Cycle)
	assert.NotEqual(t, uuid.Nil, lk.Cycle)
	assert.Equal(t, reply.Question.Text, lk.Question)

	// The placeholder is pushed synchronously, before the lookup runs.
	require.Len(t, p.fragments, 1)
	assert.Equal(t, FragmentPending, p.fragments[0].Kind)
	assert.Equal(t, MsgFetching, p.fragments[0].Content)
}

func TestSubmit_SyncFragmentsDoNotWaitForFetch(t *testing.T) {
	slow := &testutil.FakeStatsClient{
		Answers: map[string]string{"1": "Drama."},
		Delay:   200 * time.Millisecond,
	}
	c := testController(t, slow)
	p := &recordingPresenter{}

	start := time.Now()
	reply := c.Submit(p, "welk genre heeft de hoogste rating?")
	elapsed := time.Since(start)

	// Submit never touches the stats service itself.
	assert.Less(t, elapsed, 100*time.Millisecond)
	assert.Empty(t, slow.Calls())
	require.Len(t, reply.Lookups, 1)
}

func TestFetch_SuccessRendersAnswerText(t *testing.T) {
	c := testController(t, nil)

	frag := c.Fetch(context.Background(), Lookup{QueryID: "4"})
	assert.Equal(t, FragmentText, frag.Kind)
	assert.Equal(t, "Avontuur heeft gemiddeld het hoogste budget.", frag.Content)
}

func TestFetch_FailureRendersFixedErrorFragment(t *testing.T) {
	failing := &testutil.FakeStatsClient{Err: stats.ErrUnavailable}
	c := testController(t, failing)

	frag := c.Fetch(context.Background(), Lookup{QueryID: "1"})
	assert.Equal(t, FragmentText, frag.Kind)
	assert.Equal(t, MsgFetchError, frag.Content)
}

func TestSubmit_MixedAnswerListKeepsOrderAroundLookups(t *testing.T) {
	// Text before and after a remote query renders synchronously around
	// the placeholder, in answer-list order.
	cat, err := catalog.New([]catalog.Question{{
		Text:     "Welk genre scoort het best?",
		Keywords: []string{"genre"},
		Answers: []catalog.Answer{
			{Kind: catalog.AnswerText, Payload: "Even kijken..."},
			{Kind: catalog.AnswerRemoteQuery, Payload: "1"},
			{Kind: catalog.AnswerText, Payload: "Meer weten? Typ help."},
		},
	}})
	require.NoError(t, err)

	c := NewController(cat, &testutil.FakeStatsClient{Answers: map[string]string{"1": "x"}}, "images/")
	p := &recordingPresenter{}

	reply := c.Submit(p, "genre")
	require.Equal(t, ReplyAnswer, reply.Kind)
	require.Len(t, reply.Lookups, 1)

	require.Len(t, p.fragments, 3)
	assert.Equal(t, FragmentText, p.fragments[0].Kind)
	assert.Equal(t, FragmentPending, p.fragments[1].Kind)
	assert.Equal(t, FragmentText, p.fragments[2].Kind)
	assert.Equal(t, "msg CineBot: "+MsgHandOff, p.events[len(p.events)-1])
}
