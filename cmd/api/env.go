package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"quadratic-api/internal/solvecache"
)

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

type config struct {
	addr       string
	historyDir string
	cacheTTL   time.Duration
}

// loadConfig reads server settings from the environment. An empty
// QUADRATIC_HISTORY_DIR keeps equation history in memory only.
func loadConfig() (config, error) {
	cfg := config{
		addr:     ":8080",
		cacheTTL: solvecache.DefaultTTL,
	}

	if v := os.Getenv("QUADRATIC_ADDR"); v != "" {
		cfg.addr = v
	}
	cfg.historyDir = os.Getenv("QUADRATIC_HISTORY_DIR")

	if v := os.Getenv("QUADRATIC_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("parse QUADRATIC_CACHE_TTL: %w", err)
		}
		cfg.cacheTTL = d
	}

	return cfg, nil
}
