package repository

import (
	"AssistHub/entity"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func startMongo(t *testing.T) *MongoDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongodb container in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Skipf("mongodb container not available: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	return newMongo(options.Client().ApplyURI(uri), "assisthub_test", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMongoAssistantRows(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()

	missing, err := db.GetAssistant(ctx, "bot")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, db.UpsertAssistant(ctx, &entity.AssistantRow{
		Name:   "bot",
		ID:     "asst_1",
		Model:  "gpt-4o",
		Active: true,
		Data:   map[string]any{"name": "bot"},
	}))

	first, err := db.GetAssistant(ctx, "bot")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "asst_1", first.ID)
	assert.True(t, first.Active)
	assert.NotEmpty(t, first.UUID)
	assert.Equal(t, "bot", first.Data["name"])

	require.NoError(t, db.UpsertAssistant(ctx, &entity.AssistantRow{Name: "bot", ID: "asst_1", Active: false}))
	second, err := db.GetAssistant(ctx, "bot")
	require.NoError(t, err)
	assert.Equal(t, first.UUID, second.UUID)
	assert.False(t, second.Active)

	require.NoError(t, db.UpsertAssistant(ctx, &entity.AssistantRow{Name: "alpha", ID: "asst_2", Active: true}))
	rows, err := db.GetAllAssistants(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0].Name)
}
