package agent

import (
	"context"
	"fmt"

	"github.com/eventmatch-ai/event-advisor/internal/llm"
)

// State is the conversation session state.
type State int

const (
	// StateAwaitingModel means a request is in flight or about to be sent.
	StateAwaitingModel State = iota
	// StateToolCallsPending means the latest model turn requested tool calls
	// and the session is waiting for the batched results.
	StateToolCallsPending
	// StateFinal means the session ended with usable text.
	StateFinal
	// StateFailed means the session ended without usable text.
	StateFailed
)

// Failure reasons surfaced through Outcome.FailureReason.
const (
	ReasonEmptyModelTurn   = "empty model turn"
	ReasonLoopNonConverged = "tool-call loop did not converge"
)

// DefaultMaxRoundTrips caps the tool-call loop when no cap is configured.
const DefaultMaxRoundTrips = 6

// Outcome is the terminal result of a session, consumed by the finalizer.
type Outcome struct {
	State         State
	Text          string
	FailureReason string
	RoundTrips    int
}

// Session owns the multi-turn exchange with the model for one analysis
// request. It is not safe for concurrent use; each request gets its own.
//
// The session holds the append-only conversation history and advances through
// StateAwaitingModel and StateToolCallsPending until it reaches StateFinal or
// StateFailed. Tool results for a pending turn must be submitted as one batch;
// one-at-a-time submission desynchronizes call/response pairing when the model
// requested several tools in parallel.
type Session struct {
	client        llm.Client
	tools         []llm.ToolSpec
	maxRoundTrips int

	history    []llm.Turn
	state      State
	pending    []llm.ToolCall
	finalText  string
	failReason string
	roundTrips int
}

// NewSession creates a session bound to a model client and tool declarations.
// maxRoundTrips <= 0 selects DefaultMaxRoundTrips.
func NewSession(client llm.Client, tools []llm.ToolSpec, maxRoundTrips int) *Session {
	if maxRoundTrips <= 0 {
		maxRoundTrips = DefaultMaxRoundTrips
	}
	return &Session{
		client:        client,
		tools:         tools,
		maxRoundTrips: maxRoundTrips,
		state:         StateAwaitingModel,
	}
}

// Start sends the prompt as the first turn and evaluates the model's reply.
func (s *Session) Start(ctx context.Context, prompt string) error {
	if len(s.history) > 0 {
		return fmt.Errorf("agent: session already started")
	}
	s.history = append(s.history, llm.Turn{Role: llm.RoleUser, Text: prompt})
	return s.roundTrip(ctx)
}

// SubmitToolResults resubmits all results for the pending tool-call batch as
// a single combined turn, then evaluates the model's next reply.
func (s *Session) SubmitToolResults(ctx context.Context, results []llm.ToolResult) error {
	if s.state != StateToolCallsPending {
		return fmt.Errorf("agent: no tool calls pending")
	}
	if len(results) != len(s.pending) {
		return fmt.Errorf("agent: expected %d tool results, got %d", len(s.pending), len(results))
	}
	s.pending = nil
	s.history = append(s.history, llm.Turn{Role: llm.RoleTool, ToolResults: results})
	s.state = StateAwaitingModel
	return s.roundTrip(ctx)
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// PendingCalls returns the tool calls of the pending batch, in the order the
// model requested them. Only meaningful in StateToolCallsPending.
func (s *Session) PendingCalls() []llm.ToolCall {
	return s.pending
}

// Outcome snapshots the terminal result. Call once the session has reached
// StateFinal or StateFailed.
func (s *Session) Outcome() Outcome {
	return Outcome{
		State:         s.state,
		Text:          s.finalText,
		FailureReason: s.failReason,
		RoundTrips:    s.roundTrips,
	}
}

// roundTrip performs one send/receive exchange and classifies the reply.
func (s *Session) roundTrip(ctx context.Context) error {
	turn, err := s.client.Generate(ctx, s.history, s.tools)
	if err != nil {
		s.state = StateFailed
		s.failReason = err.Error()
		return fmt.Errorf("agent: model round trip: %w", err)
	}
	s.roundTrips++
	s.history = append(s.history, *turn)
	s.evaluate(turn)
	return nil
}

// evaluate inspects a model turn. Any tool-call part makes the whole turn a
// tool-call turn; text alone is terminal; neither is a malformed turn.
func (s *Session) evaluate(turn *llm.Turn) {
	switch {
	case len(turn.ToolCalls) > 0:
		if s.roundTrips >= s.maxRoundTrips {
			s.state = StateFailed
			s.failReason = ReasonLoopNonConverged
			return
		}
		s.pending = turn.ToolCalls
		s.state = StateToolCallsPending
	case turn.Text != "":
		s.finalText = turn.Text
		s.state = StateFinal
	default:
		s.state = StateFailed
		s.failReason = ReasonEmptyModelTurn
	}
}
