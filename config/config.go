// Package config has the configuration file for the app
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment names accepted for ENV.
const (
	EnvDevelopment = "dev"
	EnvProduction  = "prod"
)

// Config holds all application configuration.
type Config struct {
	Port     string
	Address  string
	Env      string
	LogLevel string

	// Generative-text provider settings. APIKey may legitimately be empty:
	// the lookup path then fails with a configuration error while the rest
	// of the service keeps running.
	APIKey  string
	BaseURL string
	Models  []string

	LookupTimeout  time.Duration
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	MaxRequestBody int64
}

// Load reads configuration from the environment (and a .env file when
// present, for standalone operation) and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8000"),
		Address:        getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:            getEnvWithDefault("ENV", EnvDevelopment),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		APIKey:         strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL:        strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Models:         splitModels(getEnvWithDefault("LOOKUP_MODELS", "gpt-4-turbo,gpt-4o-mini")),
		LookupTimeout:  time.Duration(getIntEnvWithDefault("LOOKUP_TIMEOUT_SECONDS", 25)) * time.Second,
		SessionTTL:     time.Duration(getIntEnvWithDefault("SESSION_TTL_MINUTES", 60)) * time.Minute,
		SweepInterval:  time.Duration(getIntEnvWithDefault("SESSION_SWEEP_MINUTES", 10)) * time.Minute,
		MaxRequestBody: getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576), // 1MB default
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}
	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if len(cfg.Models) == 0 {
		return fmt.Errorf("invalid LOOKUP_MODELS: at least one model identifier is required")
	}
	if cfg.LookupTimeout <= 0 {
		return fmt.Errorf("invalid LOOKUP_TIMEOUT_SECONDS: must be positive")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL_MINUTES: must be positive")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("invalid SESSION_SWEEP_MINUTES: must be positive")
	}
	if cfg.MaxRequestBody < 1024 {
		return fmt.Errorf("invalid MAX_REQUEST_BODY: must be at least 1024 bytes")
	}
	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}
	if net.ParseIP(address) == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address")
	}
	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	switch env {
	case EnvDevelopment, EnvProduction:
		return nil
	}
	return fmt.Errorf("ENV must be one of: %s, %s", EnvDevelopment, EnvProduction)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
}

// splitModels parses the comma-separated model fallback list, keeping order.
func splitModels(raw string) []string {
	var models []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
