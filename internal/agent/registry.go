// Package agent implements the tool-calling orchestration loop that drives
// an event analysis conversation with a generative model.
package agent

import (
	"context"
	"fmt"

	"github.com/eventmatch-ai/event-advisor/internal/llm"
)

// Handler executes one tool call. Returned maps are fed back to the model
// verbatim; errors are converted to error-shaped results by the dispatcher.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Registry maps tool names to their declarations and local handlers.
// Register everything at process start; the registry is read-only afterwards
// and safe for concurrent resolution.
type Registry struct {
	specs    []llm.ToolSpec
	handlers map[string]Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a tool declaration and its handler. Names must be unique.
func (r *Registry) Register(spec llm.ToolSpec, h Handler) error {
	if spec.Name == "" {
		return fmt.Errorf("agent: tool spec has no name")
	}
	if h == nil {
		return fmt.Errorf("agent: tool %q has no handler", spec.Name)
	}
	if _, exists := r.handlers[spec.Name]; exists {
		return fmt.Errorf("agent: tool %q already registered", spec.Name)
	}
	r.specs = append(r.specs, spec)
	r.handlers[spec.Name] = h
	return nil
}

// Resolve looks up the handler for a tool name. The second return is false
// for unknown tools; callers must degrade to an error-shaped result rather
// than abort the conversation.
func (r *Registry) Resolve(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Specs returns the registered tool declarations in registration order.
func (r *Registry) Specs() []llm.ToolSpec {
	return r.specs
}
