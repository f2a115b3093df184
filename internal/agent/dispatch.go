package agent

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/eventmatch-ai/event-advisor/internal/llm"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
	"github.com/eventmatch-ai/event-advisor/pkg/metrics"
)

// ErrToolNotRecognized is the error payload for calls naming unknown tools.
const ErrToolNotRecognized = "tool not recognized"

// Dispatcher executes a batch of tool calls against the registry.
type Dispatcher struct {
	registry *Registry
	logger   *logger.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(r *Registry, log *logger.Logger) *Dispatcher {
	return &Dispatcher{registry: r, logger: log}
}

// Execute runs every call in the batch and returns exactly one result per
// call, in request order. Handlers run concurrently but Execute joins on all
// of them before returning. Handler errors, panics and unknown tool names are
// converted to error-shaped results rather than propagated, so the model can
// adapt and the session is never aborted by a bad call.
func (d *Dispatcher) Execute(ctx context.Context, calls []llm.ToolCall) []llm.ToolResult {
	results := make([]llm.ToolResult, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			results[i] = d.execute(ctx, call)
			return nil
		})
	}
	// Handlers never fail the group; errors are carried in the results.
	_ = g.Wait()

	return results
}

func (d *Dispatcher) execute(ctx context.Context, call llm.ToolCall) llm.ToolResult {
	result := llm.ToolResult{ID: call.ID, Name: call.Name}

	handler, ok := d.registry.Resolve(call.Name)
	if !ok {
		d.logger.Warn("model requested unknown tool")
		metrics.RecordToolCall(call.Name, "unknown")
		result.Response = map[string]any{"error": ErrToolNotRecognized}
		return result
	}

	payload, err := invoke(ctx, handler, call.Args)
	if err != nil {
		metrics.RecordToolCall(call.Name, "error")
		result.Response = map[string]any{"error": err.Error()}
		return result
	}

	metrics.RecordToolCall(call.Name, "ok")
	result.Response = payload
	return result
}

// invoke runs a handler, converting panics into errors.
func invoke(ctx context.Context, h Handler, args map[string]any) (payload map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("tool handler panicked: %v", r)
		}
	}()
	return h(ctx, args)
}
