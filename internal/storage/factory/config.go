package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/pg"
)

const defaultFileDir = "data/records"

type StorageConfig struct {
	storage.Type
	FileDir  string
	RedisURL string
	Pg       *pg.PoolConfig
}

// LoadEnv reads STORAGE_TYPE and the settings that type needs.
// An unset STORAGE_TYPE selects in-memory storage.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Warn("STORAGE_TYPE is not set, bookmarks will not survive a restart", "default", storage.InMem)
		storageType = storage.InMem
	}
	if !slices.Contains(storage.Types(), storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types())
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.File:
		cfg.FileDir = os.Getenv("STORAGE_FILE_DIR")
		if cfg.FileDir == "" {
			cfg.FileDir = defaultFileDir
		}
	case storage.Redis:
		cfg.RedisURL = os.Getenv("REDIS_URL")
		if cfg.RedisURL == "" {
			slog.Error("Redis URL is not set")
			return nil, fmt.Errorf("REDIS_URL environment variable is not set")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING environment variable is not set")
		}
	}

	return cfg, nil
}
