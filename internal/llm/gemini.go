package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient is the Google Gemini LLM client.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name returns the provider name.
func (c *GeminiClient) Name() string {
	return "gemini"
}

// Generate sends the conversation history and returns the next model turn.
func (c *GeminiClient) Generate(ctx context.Context, history []Turn, tools []ToolSpec) (*Turn, error) {
	contents := toGenaiContents(history)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}
	if len(tools) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: toGenaiDeclarations(tools)}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	turn := &Turn{Role: RoleModel}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		// Leave the turn empty; the session treats it as malformed.
		return turn, nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			turn.Text += part.Text
		}
		if part.FunctionCall != nil {
			turn.ToolCalls = append(turn.ToolCalls, ToolCall{
				ID:   part.FunctionCall.ID,
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
		}
	}

	return turn, nil
}

func toGenaiContents(history []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		switch t.Role {
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(t.Text, genai.RoleUser))
		case RoleModel:
			c := &genai.Content{Role: string(genai.RoleModel)}
			if t.Text != "" {
				c.Parts = append(c.Parts, &genai.Part{Text: t.Text})
			}
			for _, call := range t.ToolCalls {
				c.Parts = append(c.Parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   call.ID,
						Name: call.Name,
						Args: call.Args,
					},
				})
			}
			contents = append(contents, c)
		case RoleTool:
			// Gemini expects tool results as user-authored function responses,
			// all results of a batch inside a single content.
			c := &genai.Content{Role: string(genai.RoleUser)}
			for _, res := range t.ToolResults {
				c.Parts = append(c.Parts, &genai.Part{
					FunctionResponse: &genai.FunctionResponse{
						ID:       res.ID,
						Name:     res.Name,
						Response: res.Response,
					},
				})
			}
			contents = append(contents, c)
		}
	}
	return contents
}

func toGenaiDeclarations(tools []ToolSpec) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Parameters.Properties))
		for name, p := range t.Parameters.Properties {
			props[name] = &genai.Schema{
				Type:        genaiType(p.Type),
				Description: p.Description,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genaiType(t.Parameters.Type),
				Properties: props,
				Required:   t.Parameters.Required,
			},
		})
	}
	return decls
}

func genaiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeUnspecified
	}
}
