package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventmatch-ai/event-advisor/internal/agent"
	"github.com/eventmatch-ai/event-advisor/internal/llm"
	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
)

// scriptedClient replays a fixed sequence of model turns.
type scriptedClient struct {
	turns []*llm.Turn
	calls int

	// lastPrompt is the text of the first user turn on the last call.
	lastPrompt string
	// lastToolResults are the results in the most recent tool turn seen.
	lastToolResults []llm.ToolResult
}

func (c *scriptedClient) Generate(ctx context.Context, history []llm.Turn, tools []llm.ToolSpec) (*llm.Turn, error) {
	if len(history) > 0 && history[0].Role == llm.RoleUser {
		c.lastPrompt = history[0].Text
	}
	for _, t := range history {
		if t.Role == llm.RoleTool {
			c.lastToolResults = t.ToolResults
		}
	}
	i := c.calls
	c.calls++
	if i >= len(c.turns) {
		return &llm.Turn{Role: llm.RoleModel}, nil
	}
	return c.turns[i], nil
}

func (c *scriptedClient) Name() string { return "scripted" }

// fakeEventStore serves a fixed event set or a fixed error.
type fakeEventStore struct {
	events []model.Event
	err    error
}

func (f *fakeEventStore) ListEvents(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Event
	for _, e := range f.events {
		if filter.ExcludeName != "" && e.Name == filter.ExcludeName {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStore) Count(ctx context.Context) (int64, error) { return 0, f.err }

func (f *fakeEventStore) Seed(ctx context.Context, events []model.Event) error { return f.err }

// recordingPublisher captures published records.
type recordingPublisher struct {
	records []*model.AnalysisCompleted
	err     error
}

func (p *recordingPublisher) PublishCompleted(ctx context.Context, rec *model.AnalysisCompleted) error {
	if p.err != nil {
		return p.err
	}
	p.records = append(p.records, rec)
	return nil
}

func searchRegistry(t *testing.T) *agent.Registry {
	t.Helper()
	r := agent.NewRegistry()
	require.NoError(t, r.Register(agent.SearchToolSpec(), agent.SearchHandler()))
	return r
}

func newService(t *testing.T, client llm.Client, events *fakeEventStore, pub Publisher) *AnalysisService {
	t.Helper()
	return NewAnalysisService(client, searchRegistry(t), events, pub, 500, 6, logger.NewNop())
}

func slushRequest() *model.AnalysisRequest {
	return &model.AnalysisRequest{
		EventName:          "Slush",
		EventWebsite:       "https://slush.org",
		StartupDescription: "AI HR SaaS tool",
	}
}

func TestAnalyze_SingleSearchCallScenario(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{
		{Role: llm.RoleModel, ToolCalls: []llm.ToolCall{
			{ID: "1", Name: "search_internet", Args: map[string]any{"query": "https://slush.org"}},
		}},
		{Role: llm.RoleModel, Text: "This event is very promising for your interests! Strong startup focus."},
	}}
	pub := &recordingPublisher{}
	svc := newService(t, client, &fakeEventStore{events: []model.Event{{Name: "Web Summit"}}}, pub)

	result, err := svc.Analyze(context.Background(), slushRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.LessOrEqual(t, len(result.Analysis), 500)
	assert.Contains(t, result.Analysis, "promising")

	// The dispatcher produced exactly one result and it carried the
	// simulated search payload back to the model.
	require.Len(t, client.lastToolResults, 1)
	assert.Equal(t, "search_internet", client.lastToolResults[0].Name)
	assert.Contains(t, client.lastToolResults[0].Response["result"], "Search results for")

	// A completion record was published.
	require.Len(t, pub.records, 1)
	assert.Equal(t, "Slush", pub.records[0].EventName)
	assert.Equal(t, 2, pub.records[0].RoundTrips)
}

func TestAnalyze_MissingRequiredFieldNoModelCall(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{}
	svc := newService(t, client, &fakeEventStore{}, nil)

	_, err := svc.Analyze(context.Background(), &model.AnalysisRequest{EventName: "Slush"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "startupDescription")

	// Validation failures must be rejected before any model interaction.
	assert.Zero(t, client.calls)
}

func TestAnalyze_StoreFailureStillCompletes(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{
		{Role: llm.RoleModel, Text: "This event is very promising for your interests! Good fit."},
	}}
	svc := newService(t, client, &fakeEventStore{err: errors.New("db down")}, nil)

	result, err := svc.Analyze(context.Background(), slushRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Analysis)

	// The prompt degraded to the empty-pool sentinel instead of aborting.
	assert.Contains(t, client.lastPrompt, agent.NoAlternativesSentinel)
}

func TestAnalyze_TruncatesLongVerdict(t *testing.T) {
	t.Parallel()

	long := "This event is very promising for your interests! " + strings.Repeat("detail ", 200)
	client := &scriptedClient{turns: []*llm.Turn{{Role: llm.RoleModel, Text: long}}}
	pub := &recordingPublisher{}
	svc := newService(t, client, &fakeEventStore{}, pub)

	result, err := svc.Analyze(context.Background(), slushRequest())
	require.NoError(t, err)
	assert.Len(t, result.Analysis, 500)
	assert.True(t, strings.HasSuffix(result.Analysis, "..."))

	require.Len(t, pub.records, 1)
	assert.True(t, pub.records[0].Truncated)
}

func TestAnalyze_LoopNonConvergenceFails(t *testing.T) {
	t.Parallel()

	toolCall := &llm.Turn{Role: llm.RoleModel, ToolCalls: []llm.ToolCall{
		{ID: "1", Name: "search_internet", Args: map[string]any{"query": "x"}},
	}}
	turns := make([]*llm.Turn, 10)
	for i := range turns {
		turns[i] = toolCall
	}
	client := &scriptedClient{turns: turns}
	svc := newService(t, client, &fakeEventStore{}, nil)

	_, err := svc.Analyze(context.Background(), slushRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), agent.ReasonLoopNonConverged)
	assert.Equal(t, 6, client.calls)
}

func TestAnalyze_UnknownToolDoesNotAbort(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{
		{Role: llm.RoleModel, ToolCalls: []llm.ToolCall{
			{ID: "1", Name: "crystal_ball", Args: map[string]any{}},
			{ID: "2", Name: "search_internet", Args: map[string]any{"query": "https://slush.org"}},
		}},
		{Role: llm.RoleModel, Text: "This event seems less aligned with your startup goals. Try Web Summit."},
	}}
	svc := newService(t, client, &fakeEventStore{}, nil)

	result, err := svc.Analyze(context.Background(), slushRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Analysis)

	require.Len(t, client.lastToolResults, 2)
	assert.Equal(t, map[string]any{"error": agent.ErrToolNotRecognized}, client.lastToolResults[0].Response)
	assert.Contains(t, client.lastToolResults[1].Response["result"], "Search results for")
}

func TestAnalyze_PublisherFailureNonFatal(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{
		{Role: llm.RoleModel, Text: "This event is very promising for your interests! Go."},
	}}
	svc := newService(t, client, &fakeEventStore{}, &recordingPublisher{err: errors.New("nats down")})

	result, err := svc.Analyze(context.Background(), slushRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Analysis)
}
