package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenaiContents_MapsRolesAndParts(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Text: "prompt"},
		{Role: RoleModel, Text: "thinking", ToolCalls: []ToolCall{
			{Name: "search_internet", Args: map[string]any{"query": "slush"}},
		}},
		{Role: RoleTool, ToolResults: []ToolResult{
			{Name: "search_internet", Response: map[string]any{"result": "a"}},
			{Name: "search_internet", Response: map[string]any{"result": "b"}},
		}},
	}

	contents := toGenaiContents(history)
	require.Len(t, contents, 3)

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)

	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	require.Len(t, contents[1].Parts, 2)
	assert.Equal(t, "thinking", contents[1].Parts[0].Text)
	require.NotNil(t, contents[1].Parts[1].FunctionCall)
	assert.Equal(t, "search_internet", contents[1].Parts[1].FunctionCall.Name)

	// Tool results go back as a single user-authored content with one
	// function response part per result.
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)
	require.Len(t, contents[2].Parts, 2)
	require.NotNil(t, contents[2].Parts[0].FunctionResponse)
	assert.Equal(t, map[string]any{"result": "a"}, contents[2].Parts[0].FunctionResponse.Response)
	assert.Equal(t, map[string]any{"result": "b"}, contents[2].Parts[1].FunctionResponse.Response)
}

func TestToGenaiDeclarations_SchemaShape(t *testing.T) {
	t.Parallel()

	decls := toGenaiDeclarations([]ToolSpec{{
		Name:        "search_internet",
		Description: "simulated search",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"query": {Type: "string"},
			},
			Required: []string{"query"},
		},
	}})

	require.Len(t, decls, 1)
	assert.Equal(t, "search_internet", decls[0].Name)
	require.NotNil(t, decls[0].Parameters)
	assert.Equal(t, genai.TypeObject, decls[0].Parameters.Type)
	assert.Equal(t, []string{"query"}, decls[0].Parameters.Required)
	require.Contains(t, decls[0].Parameters.Properties, "query")
	assert.Equal(t, genai.TypeString, decls[0].Parameters.Properties["query"].Type)
}
