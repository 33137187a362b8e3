package helpcenter

import (
	"AssistHub/entity"
	"context"
	"encoding/json"
)

type Core interface {
	SearchHelpCenter(ctx context.Context, query string) ([]entity.Article, error)
	HandleCommand(ctx context.Context, name string, args json.RawMessage) (string, error)
}
