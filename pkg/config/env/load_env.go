package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces defaultPaths. A missing file is an error only
// when env is "local" or empty; variables already set are never overridden.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}
	if len(paths) == 0 {
		return nil
	}

	err := godotenv.Load(paths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}
