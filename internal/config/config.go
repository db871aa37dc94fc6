package config

import (
	"os"
	"strconv"
	"time"

	"equipviz/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Upload  UploadConfig
	Session SessionConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// BackendConfig holds the analytics backend connection settings. The host
// and port are deployment configuration; the path contract is fixed.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UploadConfig holds CSV upload limits enforced before proxying
type UploadConfig struct {
	MaxSizeMB int64
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Upload:  loadUploadConfig(),
		Session: loadSessionConfig(),
	}

	backendConfig, err := loadBackendConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load backend configuration")
	}
	config.Backend = *backendConfig

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadBackendConfig() (*BackendConfig, error) {
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		return nil, errors.ConfigInvalid("BACKEND_URL is required")
	}

	timeoutSec := getEnvIntOrDefault("BACKEND_TIMEOUT_SECONDS", 30)

	return &BackendConfig{
		BaseURL: baseURL,
		Timeout: time.Duration(timeoutSec) * time.Second,
	}, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSizeMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 10)),
	}
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		TTL:           time.Duration(getEnvIntOrDefault("SESSION_TTL_MINUTES", 120)) * time.Minute,
		SweepInterval: time.Duration(getEnvIntOrDefault("SESSION_SWEEP_MINUTES", 10)) * time.Minute,
	}
}

func validateConfig(config *Config) error {
	if config.Backend.BaseURL == "" {
		return errors.ConfigInvalid("backend URL is required")
	}
	if config.Upload.MaxSizeMB <= 0 {
		return errors.ConfigInvalid("upload size limit must be positive")
	}
	if config.Session.TTL <= 0 {
		return errors.ConfigInvalid("session TTL must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
