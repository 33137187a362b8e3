package core

import (
	"AssistHub/ai/assistant"
	"AssistHub/entity"
	"AssistHub/internal/lib/sl"
	"context"
	"encoding/json"
	"log/slog"
)

type Repository interface {
	assistant.Storage
	GetAllAssistants(ctx context.Context) ([]entity.AssistantRow, error)
}

type HelpCenter interface {
	Search(ctx context.Context, query string) ([]entity.Article, error)
	Tool() assistant.Function
	HandleCommand(ctx context.Context, name string, args json.RawMessage) (string, error)
}

type Core struct {
	manager    *assistant.Manager
	repo       Repository
	helpCenter HelpCenter
	authKey    string
	log        *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

func (c *Core) SetAssistantManager(manager *assistant.Manager) {
	c.manager = manager
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetHelpCenter(helpCenter HelpCenter) {
	c.helpCenter = helpCenter
}
