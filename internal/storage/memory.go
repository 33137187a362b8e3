package storage

import (
	"AssistHub/entity"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory keeps assistant rows in process, keyed by name.
type Memory struct {
	mu   sync.RWMutex
	rows map[string]entity.AssistantRow
}

func NewMemory() *Memory {
	return &Memory{rows: make(map[string]entity.AssistantRow)}
}

func (m *Memory) UpsertAssistant(_ context.Context, row *entity.AssistantRow) error {
	if row == nil || row.Name == "" {
		return fmt.Errorf("assistant name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	stored := *row
	if existing, ok := m.rows[row.Name]; ok {
		stored.UUID = existing.UUID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.UUID = uuid.NewString()
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}
	m.rows[row.Name] = stored
	return nil
}

func (m *Memory) GetAssistant(_ context.Context, name string) (*entity.AssistantRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[name]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *Memory) GetAllAssistants(_ context.Context) ([]entity.AssistantRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]entity.AssistantRow, 0, len(m.rows))
	for _, row := range m.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}
