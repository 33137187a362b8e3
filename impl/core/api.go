package core

import (
	"AssistHub/ai/assistant"
	"AssistHub/entity"
	"AssistHub/internal/lib/sl"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrNotConfigured = errors.New("service not configured")
	ErrUnauthorized  = errors.New("invalid api key")
)

func (c *Core) AuthenticateByToken(token string) (string, error) {
	if c.authKey == "" {
		return "", fmt.Errorf("authentication: %w", ErrNotConfigured)
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) != 1 {
		return "", ErrUnauthorized
	}
	return "api", nil
}

func (c *Core) newAssistant(name string) (*assistant.Assistant, error) {
	if c.manager == nil {
		return nil, fmt.Errorf("assistants: %w", ErrNotConfigured)
	}
	return c.manager.New(name), nil
}

func (c *Core) configure(a *assistant.Assistant, conf *entity.AssistantConfig) error {
	if conf.ID != "" {
		a.ID = conf.ID
	}
	if conf.Model != "" {
		a.Model = conf.Model
	}
	a.Description = conf.Description
	a.Instructions = conf.Instructions

	if conf.Tools != nil {
		a.Tools = make([]assistant.Tool, 0, len(conf.Tools)+1)
		for _, tool := range conf.Tools {
			a.Tools = append(a.Tools, assistant.RawTool(tool))
		}
	}
	if conf.HelpCenter {
		if c.helpCenter == nil {
			return fmt.Errorf("help center: %w", ErrNotConfigured)
		}
		a.Tools = append(a.Tools, c.helpCenter.Tool())
	}

	a.FileIDs = conf.FileIDs
	for _, fileURL := range conf.FileURLs {
		a.Files = append(a.Files, c.manager.URLFile(fileURL))
	}
	a.Metadata = conf.Metadata

	return a.Validate()
}

func (c *Core) CreateAssistant(ctx context.Context, conf *entity.AssistantConfig) (map[string]any, error) {
	a, err := c.newAssistant(conf.Name)
	if err != nil {
		return nil, err
	}
	if err = c.configure(a, conf); err != nil {
		return nil, err
	}
	if _, err = a.Create(ctx); err != nil {
		return nil, err
	}

	c.log.With(
		slog.String("name", a.Name),
		slog.String("id", a.ID),
	).Info("assistant created")

	return a.ToMap(), nil
}

// EnsureAssistant returns the remote assistant as stored, creating it from conf when unknown.
func (c *Core) EnsureAssistant(ctx context.Context, conf *entity.AssistantConfig) (*openai.Assistant, error) {
	a, err := c.newAssistant(conf.Name)
	if err != nil {
		return nil, err
	}
	if err = c.configure(a, conf); err != nil {
		return nil, err
	}
	if _, err = a.GetOrCreate(ctx, true); err != nil {
		return nil, err
	}
	return a.Remote(), nil
}

func (c *Core) GetAssistant(ctx context.Context, name string, useCache bool) (*openai.Assistant, error) {
	a, err := c.newAssistant(name)
	if err != nil {
		return nil, err
	}
	if _, err = a.Get(ctx, useCache); err != nil {
		return nil, err
	}
	return a.Remote(), nil
}

func (c *Core) UpdateAssistant(ctx context.Context, name string, conf *entity.AssistantConfig) (map[string]any, error) {
	a, err := c.newAssistant(name)
	if err != nil {
		return nil, err
	}
	// fetch first: a retrieve replaces file ids with the remote list
	if _, err = a.Get(ctx, true); err != nil {
		return nil, err
	}
	if err = c.configure(a, conf); err != nil {
		return nil, err
	}
	if _, err = a.Update(ctx); err != nil {
		return nil, err
	}

	c.log.With(
		slog.String("name", a.Name),
		slog.String("id", a.ID),
	).Info("assistant updated")

	return a.ToMap(), nil
}

func (c *Core) DeleteAssistant(ctx context.Context, name string) (*entity.AssistantDeleted, error) {
	a, err := c.newAssistant(name)
	if err != nil {
		return nil, err
	}
	deleted, err := a.Delete(ctx)
	if err != nil {
		return nil, err
	}

	c.log.With(
		slog.String("name", name),
		slog.String("id", deleted.ID),
	).Info("assistant deleted")

	return &entity.AssistantDeleted{
		ID:      deleted.ID,
		Object:  deleted.Object,
		Deleted: deleted.Deleted,
	}, nil
}

func (c *Core) GetAllAssistants(ctx context.Context) ([]entity.AssistantRow, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("repository: %w", ErrNotConfigured)
	}

	assistants, err := c.repo.GetAllAssistants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all assistants: %w", err)
	}
	return assistants, nil
}

func (c *Core) SearchHelpCenter(ctx context.Context, query string) ([]entity.Article, error) {
	if c.helpCenter == nil {
		return nil, fmt.Errorf("help center: %w", ErrNotConfigured)
	}
	return c.helpCenter.Search(ctx, query)
}

// HandleCommand runs a function tool call on behalf of an assistant run.
func (c *Core) HandleCommand(ctx context.Context, name string, args json.RawMessage) (string, error) {
	if c.helpCenter == nil {
		return "", fmt.Errorf("help center: %w", ErrNotConfigured)
	}
	output, err := c.helpCenter.HandleCommand(ctx, name, args)
	if err != nil {
		c.log.With(
			slog.String("command", name),
			sl.Err(err),
		).Error("handling command")
		return "", err
	}
	return output, nil
}
