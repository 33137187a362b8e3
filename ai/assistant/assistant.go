package assistant

import (
	"AssistHub/entity"
	"AssistHub/internal/lib/sl"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4-1106-preview"

var ErrIdNotSet = errors.New("assistant id not set")

// API is the part of the assistants endpoints used by Assistant.
// *openai.Client satisfies it.
type API interface {
	CreateAssistant(ctx context.Context, request openai.AssistantRequest) (openai.Assistant, error)
	RetrieveAssistant(ctx context.Context, assistantID string) (openai.Assistant, error)
	ModifyAssistant(ctx context.Context, assistantID string, request openai.AssistantRequest) (openai.Assistant, error)
	DeleteAssistant(ctx context.Context, assistantID string) (openai.AssistantDeleteResponse, error)
}

// Storage remembers assistant ids by name. GetAssistant returns nil, nil when no row exists.
type Storage interface {
	GetAssistant(ctx context.Context, name string) (*entity.AssistantRow, error)
	UpsertAssistant(ctx context.Context, row *entity.AssistantRow) error
}

// Assistant mirrors one remote assistant. It is not safe for concurrent use.
type Assistant struct {
	ID     string `json:"id,omitempty"`
	Object string `json:"object,omitempty"`

	// Model defaults to DefaultModel when empty.
	Model        string `json:"model"`
	Name         string `json:"name,omitempty" validate:"max=256"`
	Description  string `json:"description,omitempty" validate:"max=512"`
	Instructions string `json:"instructions,omitempty" validate:"max=32768"`

	// Tools and files are sent only when non-nil.
	Tools   []Tool   `json:"tools,omitempty" validate:"max=128"`
	FileIDs []string `json:"file_ids,omitempty" validate:"max=20"`
	Files   []File   `json:"files,omitempty"`

	// Up to 16 pairs, keys up to 64 characters, string values up to 512 characters.
	Metadata map[string]any `json:"metadata,omitempty" validate:"max=16,dive,keys,max=64,endkeys"`

	// Unix seconds, set from the remote response only.
	CreatedAt int64 `json:"created_at,omitempty"`

	api     API
	storage Storage
	remote  *openai.Assistant
	log     *slog.Logger
}

// New returns an assistant bound to api. A nil api is replaced on first use by a
// client built from OPENAI_API_KEY.
func New(api API, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assistant{
		Model: DefaultModel,
		api:   api,
		log:   logger.With(sl.Module("assistant")),
	}
}

func (a *Assistant) SetStorage(storage Storage) {
	a.storage = storage
}

// Remote returns the last fetched remote representation, or nil.
func (a *Assistant) Remote() *openai.Assistant {
	return a.remote
}

func (a *Assistant) client() API {
	if a.api == nil {
		a.api = openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	}
	return a.api
}

func (a *Assistant) logger() *slog.Logger {
	if a.log == nil {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.log
}

func (a *Assistant) model() string {
	if a.Model == "" {
		return DefaultModel
	}
	return a.Model
}

func (a *Assistant) loadFromRemote(remote openai.Assistant) {
	a.remote = &remote
	a.ID = remote.ID
	a.Object = remote.Object
	a.CreatedAt = remote.CreatedAt
	a.FileIDs = remote.FileIDs
}

func (a *Assistant) loadFromStorage(ctx context.Context) {
	if a.storage == nil || a.Name == "" {
		return
	}
	row, err := a.storage.GetAssistant(ctx, a.Name)
	if err != nil {
		a.logger().With(slog.String("name", a.Name), sl.Err(err)).Debug("load from storage")
		return
	}
	if row == nil || !row.Active || row.ID == "" {
		return
	}
	a.ID = row.ID
}

func (a *Assistant) saveToStorage(ctx context.Context, active bool) {
	if a.storage == nil || a.Name == "" {
		return
	}
	row := &entity.AssistantRow{
		Name:      a.Name,
		ID:        a.ID,
		Model:     a.model(),
		Active:    active,
		Data:      a.ToMap(),
		UpdatedAt: time.Now(),
	}
	if err := a.storage.UpsertAssistant(ctx, row); err != nil {
		a.logger().With(slog.String("name", a.Name), sl.Err(err)).Error("save to storage")
	}
}

// request builds the create/update payload. Create sends metadata whenever it is
// non-nil; update only when it has entries.
func (a *Assistant) request(ctx context.Context, forUpdate bool) (openai.AssistantRequest, error) {
	req := openai.AssistantRequest{
		Model: a.model(),
	}
	if a.Name != "" {
		req.Name = &a.Name
	}
	if a.Description != "" {
		req.Description = &a.Description
	}
	if a.Instructions != "" {
		req.Instructions = &a.Instructions
	}
	if a.Tools != nil {
		tools, err := assistantTools(a.Tools)
		if err != nil {
			return req, err
		}
		req.Tools = tools
	}
	if a.FileIDs != nil || a.Files != nil {
		fileIDs := make([]string, 0, len(a.FileIDs)+len(a.Files))
		fileIDs = append(fileIDs, a.FileIDs...)
		for _, file := range a.Files {
			id, err := file.GetID(ctx)
			if err != nil {
				return req, fmt.Errorf("resolve file id: %w", err)
			}
			fileIDs = append(fileIDs, id)
		}
		req.FileIDs = fileIDs
	}
	if forUpdate {
		if len(a.Metadata) > 0 {
			req.Metadata = a.Metadata
		}
	} else if a.Metadata != nil {
		// go-openai omits an empty map on the wire; the request value still carries it
		req.Metadata = a.Metadata
	}
	return req, nil
}

func (a *Assistant) Create(ctx context.Context) (*Assistant, error) {
	req, err := a.request(ctx, false)
	if err != nil {
		return nil, err
	}

	remote, err := a.client().CreateAssistant(ctx, req)
	if err != nil {
		return nil, err
	}
	a.loadFromRemote(remote)
	a.saveToStorage(ctx, true)

	a.logger().With(slog.String("id", a.ID)).Debug("assistant created")
	return a, nil
}

// GetID returns the known id, consulting storage when nothing is known locally.
// An empty result means the id is unresolved.
func (a *Assistant) GetID(ctx context.Context) string {
	if a.remote != nil && a.remote.ID != "" {
		return a.remote.ID
	}
	if a.ID != "" {
		return a.ID
	}
	a.loadFromStorage(ctx)
	return a.ID
}

func (a *Assistant) Get(ctx context.Context, useCache bool) (*Assistant, error) {
	if a.remote != nil && useCache {
		return a, nil
	}

	id := a.GetID(ctx)
	if id == "" {
		return nil, ErrIdNotSet
	}

	remote, err := a.client().RetrieveAssistant(ctx, id)
	if err != nil {
		return nil, err
	}
	a.loadFromRemote(remote)
	return a, nil
}

// GetOrCreate creates the assistant only when no id can be resolved.
func (a *Assistant) GetOrCreate(ctx context.Context, useCache bool) (*Assistant, error) {
	existing, err := a.Get(ctx, useCache)
	if errors.Is(err, ErrIdNotSet) {
		return a.Create(ctx)
	}
	return existing, err
}

func (a *Assistant) Update(ctx context.Context) (*Assistant, error) {
	existing, err := a.Get(ctx, true)
	if err != nil {
		if errors.Is(err, ErrIdNotSet) {
			a.logger().Warn("assistant not available")
		}
		return nil, err
	}

	req, err := a.request(ctx, true)
	if err != nil {
		return nil, err
	}

	remote, err := a.client().ModifyAssistant(ctx, existing.ID, req)
	if err != nil {
		return nil, err
	}
	a.loadFromRemote(remote)
	a.saveToStorage(ctx, true)

	a.logger().With(slog.String("id", a.ID)).Debug("assistant updated")
	return a, nil
}

// Delete removes the remote assistant. The local id is cleared afterwards.
func (a *Assistant) Delete(ctx context.Context) (openai.AssistantDeleteResponse, error) {
	existing, err := a.Get(ctx, true)
	if err != nil {
		if errors.Is(err, ErrIdNotSet) {
			a.logger().Warn("assistant not available")
		}
		return openai.AssistantDeleteResponse{}, err
	}

	deleted, err := a.client().DeleteAssistant(ctx, existing.ID)
	if err != nil {
		return deleted, err
	}
	a.logger().With(slog.String("id", deleted.ID)).Debug("assistant deleted")

	a.saveToStorage(ctx, false)
	a.remote = nil
	a.ID = ""
	return deleted, nil
}

// ToMap returns the externally meaningful fields, omitting absent ones.
func (a *Assistant) ToMap() map[string]any {
	m := map[string]any{
		"model": a.model(),
	}
	if a.Name != "" {
		m["name"] = a.Name
	}
	if a.ID != "" {
		m["id"] = a.ID
	}
	if a.Object != "" {
		m["object"] = a.Object
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	if a.Instructions != "" {
		m["instructions"] = a.Instructions
	}
	if a.Metadata != nil {
		m["metadata"] = a.Metadata
	}
	if a.Tools != nil {
		tools := make([]any, 0, len(a.Tools))
		for _, tool := range a.Tools {
			tools = append(tools, toolSnapshot(tool))
		}
		m["tools"] = tools
	}
	if a.FileIDs != nil {
		m["file_ids"] = a.FileIDs
	}
	if a.Files != nil {
		m["files"] = a.Files
	}
	return m
}

func (a *Assistant) String() string {
	data, err := json.MarshalIndent(a.ToMap(), "", "    ")
	if err != nil {
		return fmt.Sprintf("assistant %s: %v", a.ID, err)
	}
	return string(data)
}
