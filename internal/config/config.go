package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DocsBaseURL      string
	DocsAPIKey       string
	DocsLinkTemplate string
	DBPath           string
	APIPort          string
	LogLevel         slog.Level
	LogFormat        string
	IndentWidth      int
	FooterDelimiter  string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DocsBaseURL:      getEnv("DOCS_BASE_URL", ""),
		DocsAPIKey:       getEnv("DOCS_API_KEY", ""),
		DocsLinkTemplate: getEnv("DOCS_LINK_TEMPLATE", ""),
		DBPath:           getEnv("DB_PATH", "./data/meetingdocs.db"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		FooterDelimiter:  getEnv("FOOTER_DELIMITER", "---"),
	}

	// Validate required fields
	if cfg.DocsBaseURL == "" {
		return nil, fmt.Errorf("DOCS_BASE_URL is required")
	}

	// The edit-link template needs exactly one %s verb for the document ID.
	// Default to the backend's own document URL when not configured.
	if cfg.DocsLinkTemplate == "" {
		cfg.DocsLinkTemplate = cfg.DocsBaseURL + "/documents/%s"
	}
	if strings.Count(cfg.DocsLinkTemplate, "%s") != 1 {
		return nil, fmt.Errorf("DOCS_LINK_TEMPLATE must contain exactly one %%s placeholder")
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	indentWidth, err := strconv.Atoi(getEnv("INDENT_WIDTH", "2"))
	if err != nil {
		return nil, fmt.Errorf("INDENT_WIDTH must be a valid integer: %w", err)
	}
	if indentWidth <= 0 {
		return nil, fmt.Errorf("INDENT_WIDTH must be greater than 0")
	}
	cfg.IndentWidth = indentWidth

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
