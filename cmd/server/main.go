package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/internal/api"
	"github.com/kaiolohia/roster/internal/config"
	"github.com/kaiolohia/roster/pkg/clients/gmailclient"
	"github.com/kaiolohia/roster/pkg/clients/sheetsclient"
	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/postgres"
	"github.com/kaiolohia/roster/pkg/utils/logging"
)

// main is the entry point for the roster API server.
func main() {
	logger, err := logging.InitLogger("server")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.RunMigrations(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Database initialized")

	// The Google clients are optional: without an OAuth client config the
	// publish and notify endpoints answer 503 and everything else works.
	var sheets services.SheetWriter
	var mailer services.EmailSender
	if oauthCfg, err := config.LoadOAuthClient(); err == nil {
		sheetsClient, err := sheetsclient.NewClient(ctx, oauthCfg)
		if err != nil {
			logger.Fatal("Failed to create sheets client", zap.Error(err))
		}
		gmailClient, err := gmailclient.NewClient(ctx, oauthCfg, sheetsClient.Token())
		if err != nil {
			logger.Fatal("Failed to create gmail client", zap.Error(err))
		}
		sheets = sheetsClient
		mailer = gmailClient
		logger.Info("Google clients initialized")
	} else {
		logger.Warn("Google clients disabled", zap.Error(err))
	}

	server := api.NewServer(cfg, database, logger, sheets, mailer)

	router := chi.NewRouter()
	server.RegisterRoutes(router)
	logger.Info("API routes registered")

	logger.Info("Roster server starting", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
