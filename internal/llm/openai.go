package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient is the OpenAI LLM client.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends the conversation history and returns the next model turn.
func (c *OpenAIClient) Generate(ctx context.Context, history []Turn, tools []ToolSpec) (*Turn, error) {
	messages, err := toOpenAIMessages(history)
	if err != nil {
		return nil, err
	}

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if len(tools) > 0 {
		req.Tools = toOpenAITools(tools)
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	turn := &Turn{Role: RoleModel}
	if len(resp.Choices) == 0 {
		return turn, nil
	}

	msg := resp.Choices[0].Message
	turn.Text = msg.Content
	for _, tc := range msg.ToolCalls {
		args := make(map[string]any)
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("decode tool call arguments for %s: %w", tc.Function.Name, err)
			}
		}
		turn.ToolCalls = append(turn.ToolCalls, ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		})
	}

	return turn, nil
}

func toOpenAIMessages(history []Turn) ([]openai.ChatCompletionMessage, error) {
	var messages []openai.ChatCompletionMessage
	for _, t := range history {
		switch t.Role {
		case RoleUser:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: t.Text,
			})
		case RoleModel:
			msg := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: t.Text,
			}
			for _, call := range t.ToolCalls {
				raw, err := json.Marshal(call.Args)
				if err != nil {
					return nil, fmt.Errorf("encode tool call arguments for %s: %w", call.Name, err)
				}
				msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
					ID:   call.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      call.Name,
						Arguments: string(raw),
					},
				})
			}
			messages = append(messages, msg)
		case RoleTool:
			// One tool message per result, all appended in batch order.
			for _, res := range t.ToolResults {
				raw, err := json.Marshal(res.Response)
				if err != nil {
					return nil, fmt.Errorf("encode tool result for %s: %w", res.Name, err)
				}
				messages = append(messages, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Content:    string(raw),
					Name:       res.Name,
					ToolCallID: res.ID,
				})
			}
		}
	}
	return messages, nil
}

func toOpenAITools(tools []ToolSpec) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]any, len(t.Parameters.Properties))
		for name, p := range t.Parameters.Properties {
			prop := map[string]any{"type": p.Type}
			if p.Description != "" {
				prop["description"] = p.Description
			}
			props[name] = prop
		}
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters: map[string]any{
					"type":       t.Parameters.Type,
					"properties": props,
					"required":   t.Parameters.Required,
				},
			},
		})
	}
	return out
}
