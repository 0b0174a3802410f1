package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/brainfeed/internal/api/server"
	"github.com/DjordjeVuckovic/brainfeed/internal/fetch"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/factory"
	"github.com/DjordjeVuckovic/brainfeed/pkg/config/env"
)

const defaultContentAPIURL = "http://localhost:5000"

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type LogConfig struct {
	Level slog.Level
	JSON  bool
}

type BrainfeedConfig struct {
	Server        *server.Config
	Fetch         fetch.Config
	Cache         query.Config
	StorageConfig factory.StorageConfig
	Log           LogConfig
}

func (as *AppConfig) Load() (*BrainfeedConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/brainfeed_web/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	fetchCfg, err := loadFetchConfig()
	if err != nil {
		return nil, err
	}

	cacheCfg, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &BrainfeedConfig{
		Server:        serverCfg,
		Fetch:         fetchCfg,
		Cache:         cacheCfg,
		StorageConfig: *storageCfg,
		Log:           logCfg,
	}, nil
}

func loadLogConfig() (LogConfig, error) {
	cfg := LogConfig{
		Level: slog.LevelInfo,
		JSON:  strings.EqualFold(os.Getenv("LOG_FORMAT"), "json"),
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := cfg.Level.UnmarshalText([]byte(lvl)); err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL %q: %w", lvl, err)
		}
	}
	return cfg, nil
}

func loadFetchConfig() (fetch.Config, error) {
	cfg := fetch.Config{
		BaseURL:      os.Getenv("CONTENT_API_URL"),
		Timeout:      fetch.DefaultTimeout,
		MaxBodyBytes: fetch.DefaultMaxBodyBytes,
	}
	if cfg.BaseURL == "" {
		slog.Warn("CONTENT_API_URL is not set, using default", "default", defaultContentAPIURL)
		cfg.BaseURL = defaultContentAPIURL
	}

	timeout, err := durationEnv("FETCH_TIMEOUT", cfg.Timeout)
	if err != nil {
		return cfg, err
	}
	cfg.Timeout = timeout

	maxBody, err := intEnv("FETCH_MAX_BODY_BYTES", int(cfg.MaxBodyBytes))
	if err != nil {
		return cfg, err
	}
	cfg.MaxBodyBytes = int64(maxBody)
	return cfg, nil
}

func loadCacheConfig() (query.Config, error) {
	size, err := intEnv("QUERY_CACHE_SIZE", query.DefaultSize)
	if err != nil {
		return query.Config{}, err
	}
	freshFor, err := durationEnv("QUERY_CACHE_FRESH_FOR", 0)
	if err != nil {
		return query.Config{}, err
	}
	return query.Config{Size: size, FreshFor: freshFor}, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

// durationEnv accepts Go durations ("2s") or plain milliseconds ("2000").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", key, raw)
	}
	return d, nil
}

func setupLogger(cfg LogConfig) {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
}
