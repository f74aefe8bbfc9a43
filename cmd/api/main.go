package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"meetingdocs/internal/config"
	"meetingdocs/internal/docbackend"
	"meetingdocs/internal/http"
	"meetingdocs/internal/markdown"
	"meetingdocs/internal/preview"
	"meetingdocs/internal/service"
	"meetingdocs/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository and backend client
	conversionRepo := storage.NewConversionRepo(db)
	backend := docbackend.NewClient(cfg.DocsBaseURL, cfg.DocsAPIKey)
	slog.Info("Document backend configured", "base_url", cfg.DocsBaseURL)

	// Create converter service
	parseOpts := markdown.Options{
		IndentWidth:     cfg.IndentWidth,
		FooterDelimiter: cfg.FooterDelimiter,
	}
	converter := service.NewConverter(backend, conversionRepo, parseOpts, cfg.DocsLinkTemplate)

	// Create router with dependencies
	deps := &http.Deps{
		Converter: converter,
		Store:     conversionRepo,
		Renderer:  preview.NewRenderer(),
		DB:        db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
