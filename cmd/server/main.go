package main

import (
	"context"
	"fmt"

	"github.com/idmhub/scim-bridge/internal/bridge"
	"github.com/idmhub/scim-bridge/internal/config"
	"github.com/idmhub/scim-bridge/internal/engine"
	handler "github.com/idmhub/scim-bridge/internal/handler/http"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/metrics"
	"github.com/idmhub/scim-bridge/internal/server"
	"github.com/idmhub/scim-bridge/internal/service"
	"github.com/idmhub/scim-bridge/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("scim-bridge")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)

	// placeholder engine until a protocol engine is linked in
	dispatcher := bridge.NewDispatcher(engine.NewNotImplemented(), log)

	handlers := handler.NewHandler(
		services,
		dispatcher,
		store.NewUnitOfWorkFactory(db, log),
		metrics.NewMetrics(),
		log,
	)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
