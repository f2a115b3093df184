package llm

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOpenAIMessages_RoundTripsHistory(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Text: "prompt"},
		{Role: RoleModel, ToolCalls: []ToolCall{
			{ID: "call_1", Name: "search_internet", Args: map[string]any{"query": "slush"}},
			{ID: "call_2", Name: "search_internet", Args: map[string]any{"query": "web summit"}},
		}},
		{Role: RoleTool, ToolResults: []ToolResult{
			{ID: "call_1", Name: "search_internet", Response: map[string]any{"result": "a"}},
			{ID: "call_2", Name: "search_internet", Response: map[string]any{"result": "b"}},
		}},
	}

	messages, err := toOpenAIMessages(history)
	require.NoError(t, err)

	// user + assistant + one tool message per result
	require.Len(t, messages, 4)

	assert.Equal(t, openai.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, "prompt", messages[0].Content)

	assert.Equal(t, openai.ChatMessageRoleAssistant, messages[1].Role)
	require.Len(t, messages[1].ToolCalls, 2)
	assert.Equal(t, "call_1", messages[1].ToolCalls[0].ID)
	assert.JSONEq(t, `{"query":"slush"}`, messages[1].ToolCalls[0].Function.Arguments)

	assert.Equal(t, openai.ChatMessageRoleTool, messages[2].Role)
	assert.Equal(t, "call_1", messages[2].ToolCallID)
	assert.JSONEq(t, `{"result":"a"}`, messages[2].Content)
	assert.Equal(t, "call_2", messages[3].ToolCallID)
}

func TestToOpenAITools_SchemaShape(t *testing.T) {
	t.Parallel()

	tools := toOpenAITools([]ToolSpec{{
		Name:        "search_internet",
		Description: "simulated search",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"query": {Type: "string", Description: "what to search"},
			},
			Required: []string{"query"},
		},
	}})

	require.Len(t, tools, 1)
	assert.Equal(t, openai.ToolTypeFunction, tools[0].Type)
	assert.Equal(t, "search_internet", tools[0].Function.Name)

	params, ok := tools[0].Function.Parameters.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, []string{"query"}, params["required"])

	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	query, ok := props["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", query["type"])
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewOpenAIClient("", "gpt-4o")
	require.Error(t, err)
}
