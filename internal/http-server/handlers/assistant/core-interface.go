package assistant

import (
	"AssistHub/entity"
	"context"

	"github.com/sashabaranov/go-openai"
)

type Core interface {
	CreateAssistant(ctx context.Context, conf *entity.AssistantConfig) (map[string]any, error)
	EnsureAssistant(ctx context.Context, conf *entity.AssistantConfig) (*openai.Assistant, error)
	GetAssistant(ctx context.Context, name string, useCache bool) (*openai.Assistant, error)
	UpdateAssistant(ctx context.Context, name string, conf *entity.AssistantConfig) (map[string]any, error)
	DeleteAssistant(ctx context.Context, name string) (*entity.AssistantDeleted, error)
	GetAllAssistants(ctx context.Context) ([]entity.AssistantRow, error)
}
