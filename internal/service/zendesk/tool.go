package zendesk

import (
	"AssistHub/ai/assistant"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const SearchCommand = "search_zendesk"

var ErrUnknownCommand = errors.New("unknown command")

type searchArgs struct {
	SearchString string `json:"search_string" jsonschema:"description=The search query to look for in Zendesk articles."`
}

// Tool describes SearchZendesk as an assistant function tool.
func (s *Service) Tool() assistant.Function {
	return assistant.Function{
		Name:        SearchCommand,
		Description: "Searches for articles in Zendesk Help Center that match the given search string. Returns a JSON list of article bodies.",
		Parameters:  searchArgs{},
	}
}

// HandleCommand runs a tool call issued by an assistant.
func (s *Service) HandleCommand(ctx context.Context, name string, args json.RawMessage) (string, error) {
	switch name {
	case SearchCommand:
		var req searchArgs
		if err := json.Unmarshal(args, &req); err != nil {
			return "", fmt.Errorf("invalid %s arguments: %w", name, err)
		}
		return s.SearchZendesk(ctx, req.SearchString)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}
