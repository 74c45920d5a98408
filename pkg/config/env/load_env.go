package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files. ENV_PATH, when set,
// replaces the given paths. Missing files are only an error in local mode.
func LoadDotEnv(env string, paths ...string) error {
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "paths", paths)
	}

	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		loaded = append(loaded, p)
	}

	if len(loaded) == 0 {
		if env == "local" || env == "" {
			err := godotenv.Load(paths...)
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
		return nil
	}

	if err := godotenv.Load(loaded...); err != nil {
		slog.Error("Failed to load environment variables", "paths", loaded, "error", err)
		return err
	}
	return nil
}
