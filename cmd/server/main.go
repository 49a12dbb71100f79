package main

import (
	"context"
	"fmt"

	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/handler"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/notify"
	"github.com/reenu-kutty/dear-diary/internal/server"
	"github.com/reenu-kutty/dear-diary/internal/service"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dear-diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	completer, err := ai.NewClient(cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating language model client")
	}

	notifier := notify.NewRelayNotifier(cfg.Notify, log)

	services := service.NewServices(repositories, completer, notifier, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
