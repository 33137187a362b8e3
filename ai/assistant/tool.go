package assistant

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"
)

var ErrInvalidTool = errors.New("invalid tool")

// Tool is anything that can be attached to an assistant.
type Tool interface {
	AssistantTool() (openai.AssistantTool, error)
}

type CodeInterpreter struct{}

func (CodeInterpreter) AssistantTool() (openai.AssistantTool, error) {
	return openai.AssistantTool{Type: openai.AssistantToolTypeCodeInterpreter}, nil
}

type Retrieval struct{}

func (Retrieval) AssistantTool() (openai.AssistantTool, error) {
	return openai.AssistantTool{Type: openai.AssistantToolTypeRetrieval}, nil
}

type FileSearch struct{}

func (FileSearch) AssistantTool() (openai.AssistantTool, error) {
	return openai.AssistantTool{Type: openai.AssistantToolTypeFileSearch}, nil
}

// Function is a custom function tool. Parameters may be a JSON schema
// (map, json.RawMessage or *jsonschema.Schema) or a Go struct value whose
// schema is reflected from its json and jsonschema tags.
type Function struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
	Strict      bool   `json:"strict,omitempty"`
}

func (f Function) AssistantTool() (openai.AssistantTool, error) {
	if f.Name == "" {
		return openai.AssistantTool{}, fmt.Errorf("%w: function name is required", ErrInvalidTool)
	}
	return openai.AssistantTool{
		Type: openai.AssistantToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        f.Name,
			Description: f.Description,
			Strict:      f.Strict,
			Parameters:  f.schema(),
		},
	}, nil
}

func (f Function) schema() any {
	switch p := f.Parameters.(type) {
	case nil:
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	case map[string]any, json.RawMessage, *jsonschema.Schema:
		return p
	default:
		r := jsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		}
		s := r.Reflect(p)
		s.Version = ""
		s.ID = ""
		return s
	}
}

// RawTool is a tool given in its wire form, e.g. {"type": "retrieval"}.
type RawTool map[string]any

func (t RawTool) AssistantTool() (openai.AssistantTool, error) {
	var tool openai.AssistantTool
	if kind, _ := t["type"].(string); kind == "" {
		return tool, fmt.Errorf("%w: missing type", ErrInvalidTool)
	}
	data, err := json.Marshal(t)
	if err != nil {
		return tool, fmt.Errorf("%w: %w", ErrInvalidTool, err)
	}
	if err = json.Unmarshal(data, &tool); err != nil {
		return tool, fmt.Errorf("%w: %w", ErrInvalidTool, err)
	}
	return tool, nil
}

func assistantTools(tools []Tool) ([]openai.AssistantTool, error) {
	result := make([]openai.AssistantTool, 0, len(tools))
	for i, tool := range tools {
		if tool == nil {
			return nil, fmt.Errorf("%w: tool %d is nil", ErrInvalidTool, i)
		}
		t, err := tool.AssistantTool()
		if err != nil {
			return nil, fmt.Errorf("tool %d: %w", i, err)
		}
		result = append(result, t)
	}
	return result, nil
}

// toolSnapshot is the wire form of a tool for ToMap; raw tools are kept as given.
func toolSnapshot(tool Tool) any {
	if raw, ok := tool.(RawTool); ok {
		return map[string]any(raw)
	}
	if tool == nil {
		return nil
	}
	t, err := tool.AssistantTool()
	if err != nil {
		return tool
	}
	return t
}
