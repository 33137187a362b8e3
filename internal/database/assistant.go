package repository

import (
	"AssistHub/entity"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoDB) UpsertAssistant(ctx context.Context, assistant *entity.AssistantRow) error {
	if assistant == nil || assistant.Name == "" {
		return fmt.Errorf("assistant name is required")
	}

	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(assistantCollection)

	now := time.Now()
	updatedAt := assistant.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	filter := bson.D{{Key: "name", Value: assistant.Name}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "id", Value: assistant.ID},
			{Key: "model", Value: assistant.Model},
			{Key: "active", Value: assistant.Active},
			{Key: "data", Value: assistant.Data},
			{Key: "updated_at", Value: updatedAt},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "uuid", Value: uuid.NewString()},
			{Key: "created_at", Value: now},
		}},
	}

	opts := options.Update().SetUpsert(true)
	result, err := collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("mongodb upsert assistant: %w", err)
	}

	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return fmt.Errorf("no documents matched for upsert")
	}

	return nil
}

// GetAssistant returns nil without error when no assistant has that name.
func (m *MongoDB) GetAssistant(ctx context.Context, name string) (*entity.AssistantRow, error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(assistantCollection)

	filter := bson.D{{Key: "name", Value: name}}
	var assistant entity.AssistantRow
	err = collection.FindOne(ctx, filter).Decode(&assistant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongodb find assistant: %w", err)
	}
	return &assistant, nil
}

func (m *MongoDB) GetAllAssistants(ctx context.Context) ([]entity.AssistantRow, error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(assistantCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find assistants: %w", err)
	}
	defer cursor.Close(ctx)

	var assistants []entity.AssistantRow
	if err = cursor.All(ctx, &assistants); err != nil {
		return nil, fmt.Errorf("mongodb decode assistants: %w", err)
	}

	return assistants, nil
}
