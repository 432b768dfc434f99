package config

import (
	"os"

	"datadash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Paths    PathConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// PathConfig holds file system paths for uploads and generated reports
type PathConfig struct {
	UploadDir  string
	ReportsDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Paths: PathConfig{
			UploadDir:  getEnvOrDefault("UPLOAD_DIR", "uploaded_files"),
			ReportsDir: getEnvOrDefault("REPORTS_DIR", "reports"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Paths.UploadDir == "" {
		return errors.ConfigInvalid("UPLOAD_DIR cannot be empty")
	}
	if config.Paths.ReportsDir == "" {
		return errors.ConfigInvalid("REPORTS_DIR cannot be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
