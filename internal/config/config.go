package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"imgupload-go/internal/validation"
)

// Config holds server configuration
type Config struct {
	Port       int           `validate:"required,min=1,max=65535"`                    // Port to listen on
	Env        string        `validate:"required,oneof=local development production"` // Environment (local | development | production)
	BaseURL    string        `validate:"required,url"`                                // Base URL for the server
	FormMemory int64         `validate:"required,gt=0"`                               // Memory used to parse picked files before spilling to disk
	SessionTTL time.Duration `validate:"required,gt=0"`                               // Idle time after which a session's component is unmounted
}

func (c *Config) Log() {
	log.Info().
		Int("port", c.Port).
		Str("env", c.Env).
		Str("base_url", c.BaseURL).
		Str("form_memory", humanize.IBytes(uint64(c.FormMemory))).
		Dur("session_ttl", c.SessionTTL).
		Msg("server configuration")
}

// IsDevelopment reports whether the server runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "local" || c.Env == "development"
}

// NewConfig creates a server configuration from environment variables
func NewConfig() (*Config, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		log.Error().Err(err).Msg("invalid PORT environment variable")
		return nil, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "production"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}

	formMemoryStr := os.Getenv("FORM_MEMORY")
	if formMemoryStr == "" {
		formMemoryStr = "32MB" // Default value
	}
	formMemory, err := parseSize(formMemoryStr)
	if err != nil {
		log.Error().Err(err).Msg("invalid FORM_MEMORY configuration")
		return nil, err
	}

	sessionTTLStr := os.Getenv("SESSION_TTL")
	if sessionTTLStr == "" {
		sessionTTLStr = "24h"
	}
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		log.Error().Err(err).Msg("invalid SESSION_TTL environment variable")
		return nil, fmt.Errorf("invalid SESSION_TTL %q, expected a duration with unit such as 30m or 24h: %w", sessionTTLStr, err)
	}

	cfg := &Config{
		Port:       port,
		Env:        env,
		BaseURL:    baseURL,
		FormMemory: formMemory,
		SessionTTL: sessionTTL,
	}

	if err := validation.Validate(cfg); err != nil {
		for _, e := range validation.FormatError(err) {
			log.Error().Str("field", e.Field).Msg(e.Error)
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// parseSize parses a size value postfixed with "MB" for megabytes or "GB" for gigabytes, e.g. "32MB"
// If no postfix is provided, the value is assumed to be in megabytes
func parseSize(size string) (int64, error) {
	var multiplier int64 = 1024 * 1024
	switch {
	case strings.HasSuffix(size, "GB"):
		multiplier = 1024 * 1024 * 1024
		size = strings.TrimSuffix(size, "GB")
	case strings.HasSuffix(size, "MB"):
		size = strings.TrimSuffix(size, "MB")
	}

	value, err := strconv.ParseInt(size, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", size, err)
	}
	return value * multiplier, nil
}
