package repository

import (
	"AssistHub/internal/config"
	"AssistHub/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	assistantCollection = "assistant"
)

type MongoDB struct {
	clientOptions *options.ClientOptions
	database      string
	log           *slog.Logger
}

// NewMongoClient returns nil when mongo is disabled in the config.
func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	return newMongo(clientOptions, conf.Mongo.Database, logger), nil
}

func newMongo(clientOptions *options.ClientOptions, database string, logger *slog.Logger) *MongoDB {
	return &MongoDB{
		clientOptions: clientOptions,
		database:      database,
		log:           logger.With(sl.Module("mongodb")),
	}
}

func (m *MongoDB) connect(ctx context.Context) (*mongo.Client, error) {
	connection, err := mongo.Connect(ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(ctx context.Context, connection *mongo.Client) {
	if err := connection.Disconnect(ctx); err != nil {
		m.log.Debug("mongodb disconnect", sl.Err(err))
	}
}
