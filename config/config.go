package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"auction-backend/utils"
)

// Config carries the runtime settings for the auction backend.
type Config struct {
	// Server settings
	Port string

	// Database settings. An empty DSN selects the in-memory store.
	DatabaseDSN string

	// JWT settings
	JWTSecret     string
	JWTExpiration time.Duration
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, using environment variables", nil)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DB_DSN"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		JWTExpiration: 24 * time.Hour,
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			utils.Warn("invalid JWT_EXPIRES_IN, falling back to 24h", map[string]any{"value": raw, "error": err.Error()})
		} else {
			cfg.JWTExpiration = d
		}
	}

	return cfg
}

// getEnv returns the environment value for key or the given fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
