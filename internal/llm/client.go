// Package llm provides LLM client interfaces and implementations.
package llm

import (
	"context"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks caller-authored turns (the prompt).
	RoleUser Role = "user"
	// RoleModel marks model-authored turns.
	RoleModel Role = "model"
	// RoleTool marks caller-authored turns carrying tool results.
	RoleTool Role = "tool"
)

// Schema describes the typed parameters of a tool in a provider-neutral way.
type Schema struct {
	Type       string
	Properties map[string]Property
	Required   []string
}

// Property is a single named parameter within a Schema.
type Property struct {
	Type        string
	Description string
}

// ToolSpec declares a callable tool offered to the model.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  Schema
}

// ToolCall is a tool invocation requested by the model within one turn.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult is the outcome of one tool call, fed back to the model.
// Response carries either the handler payload or an "error" key.
type ToolResult struct {
	ID       string
	Name     string
	Response map[string]any
}

// Turn is one unit of the conversation. A model turn carries Text and/or
// ToolCalls; a caller turn carries Text (the prompt) or ToolResults.
type Turn struct {
	Role        Role
	Text        string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Client is the interface for tool-capable model providers. Generate sends
// the full conversation history plus tool declarations and returns the next
// model-authored turn. Implementations must not mutate the history.
type Client interface {
	Generate(ctx context.Context, history []Turn, tools []ToolSpec) (*Turn, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of LLM provider.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)
