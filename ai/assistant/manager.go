package assistant

import (
	"AssistHub/internal/config"
	"AssistHub/internal/lib/sl"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// Client is the OpenAI surface needed to manage assistants and their files.
type Client interface {
	API
	FileAPI
}

// Manager hands out assistants that share one API client, storage and logger.
type Manager struct {
	client  Client
	storage Storage
	model   string
	log     *slog.Logger
}

func NewManager(client Client, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		model:  DefaultModel,
		log:    logger.With(sl.Module("assistant.manager")),
	}
}

// NewOpenAIClient builds the API client from configuration.
func NewOpenAIClient(conf *config.Config) *openai.Client {
	clientConfig := openai.DefaultConfig(conf.OpenAI.ApiKey)
	if conf.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = conf.OpenAI.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

func (m *Manager) SetStorage(storage Storage) {
	m.storage = storage
}

func (m *Manager) SetDefaultModel(model string) {
	if model != "" {
		m.model = model
	}
}

// New returns an unsaved assistant with the given name.
func (m *Manager) New(name string) *Assistant {
	a := New(m.client, m.log)
	a.Name = name
	a.Model = m.model
	if m.storage != nil {
		a.SetStorage(m.storage)
	}
	return a
}

func (m *Manager) LocalFile(path string) *LocalFile {
	return NewLocalFile(m.client, path)
}

func (m *Manager) URLFile(fileURL string) *URLFile {
	return NewURLFile(m.client, fileURL)
}
