package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/cavequest/internal/gamedata"
	"github.com/samdwyer/cavequest/internal/logger"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible enemy attacks.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// EasyMode starts the player in easy mode: a fatal blow sends them back
	// to the start at full health instead of ending the game.
	EasyMode bool
	// Layout is the embedded cave layout file.
	Layout string
	// LogFile receives structured logs. Empty discards them.
	LogFile string
	Log     logger.Config
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		EasyMode: true,
		Layout:   gamedata.DefaultLayout,
		Log:      logger.Config{Level: "info", Format: "text"},
	}
}

// LoadConfig reads configuration from CAVEQUEST_* environment variables,
// falling back to DefaultConfig for anything unset.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("CAVEQUEST_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid CAVEQUEST_SEED value: %w", err)
		}
		cfg.Seed = seed
	}

	if v, ok := os.LookupEnv("CAVEQUEST_EASY_MODE"); ok && v != "" {
		easy, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CAVEQUEST_EASY_MODE value: %w", err)
		}
		cfg.EasyMode = easy
	}

	cfg.Layout = getEnv("CAVEQUEST_LAYOUT", cfg.Layout)
	cfg.LogFile = getEnv("CAVEQUEST_LOG_FILE", cfg.LogFile)
	cfg.Log.Level = getEnv("CAVEQUEST_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("CAVEQUEST_LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
