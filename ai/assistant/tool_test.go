package assistant

import (
	"encoding/json"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherArgs struct {
	City  string `json:"city" jsonschema:"description=City name"`
	Units string `json:"units,omitempty" jsonschema:"enum=metric,enum=imperial"`
}

func TestBuiltinTools(t *testing.T) {
	tests := []struct {
		tool Tool
		want openai.AssistantToolType
	}{
		{CodeInterpreter{}, openai.AssistantToolTypeCodeInterpreter},
		{Retrieval{}, openai.AssistantToolTypeRetrieval},
		{FileSearch{}, openai.AssistantToolTypeFileSearch},
	}
	for _, tt := range tests {
		got, err := tt.tool.AssistantTool()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Type)
		assert.Nil(t, got.Function)
	}
}

func TestFunctionReflectsStructParameters(t *testing.T) {
	tool, err := Function{Name: "weather", Description: "Current weather", Parameters: weatherArgs{}}.AssistantTool()
	require.NoError(t, err)
	require.NotNil(t, tool.Function)

	data, err := json.Marshal(tool.Function.Parameters)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "object", schema["type"])
	assert.NotContains(t, schema, "$schema")
	assert.NotContains(t, schema, "$ref")

	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "city")
	assert.Contains(t, props, "units")
	assert.Equal(t, []any{"city"}, schema["required"])
}

func TestFunctionParameters(t *testing.T) {
	raw := map[string]any{"type": "object", "properties": map[string]any{"q": map[string]any{"type": "string"}}}
	tool, err := Function{Name: "search", Parameters: raw}.AssistantTool()
	require.NoError(t, err)
	assert.Equal(t, raw, tool.Function.Parameters)

	tool, err = Function{Name: "ping"}.AssistantTool()
	require.NoError(t, err)
	assert.Equal(t, "object", tool.Function.Parameters.(map[string]any)["type"])

	_, err = Function{}.AssistantTool()
	assert.ErrorIs(t, err, ErrInvalidTool)
}

func TestRawTool(t *testing.T) {
	tool, err := RawTool{
		"type": "function",
		"function": map[string]any{
			"name":        "lookup",
			"description": "Look things up",
			"parameters":  map[string]any{"type": "object"},
		},
	}.AssistantTool()
	require.NoError(t, err)
	assert.Equal(t, openai.AssistantToolTypeFunction, tool.Type)
	require.NotNil(t, tool.Function)
	assert.Equal(t, "lookup", tool.Function.Name)

	_, err = RawTool{}.AssistantTool()
	assert.ErrorIs(t, err, ErrInvalidTool)

	_, err = RawTool{"type": 1}.AssistantTool()
	assert.ErrorIs(t, err, ErrInvalidTool)
}

func TestAssistantToolsNil(t *testing.T) {
	_, err := assistantTools([]Tool{nil})
	assert.ErrorIs(t, err, ErrInvalidTool)
}
