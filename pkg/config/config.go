package config

import (
	"fmt"
	"os"

	apperrors "discord-mcp/pkg/errors"

	"github.com/joho/godotenv"
)

// Transport names accepted by MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds all application configuration
type Config struct {
	// App
	Env string

	// Discord
	DiscordToken string

	// MCP transport
	Transport string
	SSEAddr   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		Transport:    getEnv("MCP_TRANSPORT", TransportStdio),
		SSEAddr:      getEnv("SSE_ADDR", ":8090"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return apperrors.NewConfigMissingRequired("DISCORD_TOKEN")
	}
	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		return apperrors.NewConfigValidationFailed("MCP_TRANSPORT", fmt.Sprintf("unknown transport %q, expected %q or %q", c.Transport, TransportStdio, TransportSSE))
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
