package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventmatch-ai/event-advisor/internal/llm"
)

// scriptedClient replays a fixed sequence of model turns and records every
// history it was sent.
type scriptedClient struct {
	turns     []*llm.Turn
	errs      []error
	calls     int
	histories [][]llm.Turn
}

func (c *scriptedClient) Generate(ctx context.Context, history []llm.Turn, tools []llm.ToolSpec) (*llm.Turn, error) {
	c.histories = append(c.histories, append([]llm.Turn(nil), history...))
	i := c.calls
	c.calls++
	if i < len(c.errs) && c.errs[i] != nil {
		return nil, c.errs[i]
	}
	if i >= len(c.turns) {
		return &llm.Turn{Role: llm.RoleModel}, nil
	}
	return c.turns[i], nil
}

func (c *scriptedClient) Name() string { return "scripted" }

func textTurn(text string) *llm.Turn {
	return &llm.Turn{Role: llm.RoleModel, Text: text}
}

func toolTurn(names ...string) *llm.Turn {
	t := &llm.Turn{Role: llm.RoleModel}
	for i, n := range names {
		t.ToolCalls = append(t.ToolCalls, llm.ToolCall{
			ID:   string(rune('a' + i)),
			Name: n,
			Args: map[string]any{"query": n},
		})
	}
	return t
}

func TestSession_FinalOnFirstTurn(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{textTurn("verdict")}}
	s := NewSession(client, nil, 0)

	require.NoError(t, s.Start(context.Background(), "prompt"))

	require.Equal(t, StateFinal, s.State())
	o := s.Outcome()
	assert.Equal(t, "verdict", o.Text)
	assert.Equal(t, 1, o.RoundTrips)
	assert.Equal(t, 1, client.calls)
}

func TestSession_CollectsAllToolCallsOfOneTurn(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{
		toolTurn("search_internet", "search_internet", "search_internet"),
		textTurn("done"),
	}}
	s := NewSession(client, nil, 0)

	require.NoError(t, s.Start(context.Background(), "prompt"))
	require.Equal(t, StateToolCallsPending, s.State())
	require.Len(t, s.PendingCalls(), 3)

	results := make([]llm.ToolResult, 0, 3)
	for _, call := range s.PendingCalls() {
		results = append(results, llm.ToolResult{
			ID: call.ID, Name: call.Name,
			Response: map[string]any{"result": "ok"},
		})
	}
	require.NoError(t, s.SubmitToolResults(context.Background(), results))

	require.Equal(t, StateFinal, s.State())
	assert.Equal(t, "done", s.Outcome().Text)

	// Exactly one resubmission: two model round trips in total, and the
	// second history carries all three results inside a single tool turn.
	require.Equal(t, 2, client.calls)
	last := client.histories[1]
	toolTurns := 0
	for _, turn := range last {
		if turn.Role == llm.RoleTool {
			toolTurns++
			assert.Len(t, turn.ToolResults, 3)
		}
	}
	assert.Equal(t, 1, toolTurns)
}

func TestSession_RejectsPartialBatch(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{toolTurn("a", "b")}}
	s := NewSession(client, nil, 0)

	require.NoError(t, s.Start(context.Background(), "prompt"))
	require.Equal(t, StateToolCallsPending, s.State())

	err := s.SubmitToolResults(context.Background(), []llm.ToolResult{{Name: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 tool results")
}

func TestSession_LoopCapFails(t *testing.T) {
	t.Parallel()

	// A model that never converges to text.
	turns := make([]*llm.Turn, 10)
	for i := range turns {
		turns[i] = toolTurn("search_internet")
	}
	client := &scriptedClient{turns: turns}
	s := NewSession(client, nil, 3)

	require.NoError(t, s.Start(context.Background(), "prompt"))
	for s.State() == StateToolCallsPending {
		results := []llm.ToolResult{{ID: "a", Name: "search_internet", Response: map[string]any{"result": "x"}}}
		require.NoError(t, s.SubmitToolResults(context.Background(), results))
	}

	require.Equal(t, StateFailed, s.State())
	o := s.Outcome()
	assert.Equal(t, ReasonLoopNonConverged, o.FailureReason)
	assert.Equal(t, 3, client.calls, "loop must never exceed the round-trip cap")
}

func TestSession_EmptyModelTurnFails(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{{Role: llm.RoleModel}}}
	s := NewSession(client, nil, 0)

	require.NoError(t, s.Start(context.Background(), "prompt"))

	require.Equal(t, StateFailed, s.State())
	assert.Equal(t, ReasonEmptyModelTurn, s.Outcome().FailureReason)
}

func TestSession_TransportErrorFails(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{errs: []error{errors.New("connection reset")}}
	s := NewSession(client, nil, 0)

	err := s.Start(context.Background(), "prompt")
	require.Error(t, err)
	require.Equal(t, StateFailed, s.State())
	assert.Contains(t, s.Outcome().FailureReason, "connection reset")
}

func TestSession_StartTwiceErrors(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{textTurn("ok")}}
	s := NewSession(client, nil, 0)

	require.NoError(t, s.Start(context.Background(), "prompt"))
	require.Error(t, s.Start(context.Background(), "prompt"))
}

func TestSession_SubmitWithoutPendingErrors(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{turns: []*llm.Turn{textTurn("ok")}}
	s := NewSession(client, nil, 0)
	require.NoError(t, s.Start(context.Background(), "prompt"))

	err := s.SubmitToolResults(context.Background(), nil)
	require.Error(t, err)
}
