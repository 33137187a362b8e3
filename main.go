package main

import (
	"AssistHub/ai/assistant"
	"AssistHub/impl/core"
	"AssistHub/internal/config"
	repository "AssistHub/internal/database"
	"AssistHub/internal/http-server/api"
	"AssistHub/internal/lib/logger"
	"AssistHub/internal/lib/sl"
	"AssistHub/internal/service/zendesk"
	"AssistHub/internal/storage"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting assisthub", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	manager := assistant.NewManager(assistant.NewOpenAIClient(conf), lg)
	manager.SetDefaultModel(conf.OpenAI.Model)
	handler.SetAssistantManager(manager)
	lg.With(
		sl.Secret("openai_key", conf.OpenAI.ApiKey),
		slog.String("model", conf.OpenAI.Model),
	).Info("assistant manager initialized")

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		manager.SetStorage(db)
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	} else {
		mem := storage.NewMemory()
		manager.SetStorage(mem)
		handler.SetRepository(mem)
		lg.Info("using in-memory assistant storage")
	}

	zd := zendesk.NewService(conf, lg)
	if zd != nil {
		handler.SetHelpCenter(zd)
		lg.With(
			slog.String("company", conf.Zendesk.Company),
			slog.String("username", conf.Zendesk.Username),
		).Info("zendesk service initialized")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
