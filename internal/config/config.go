package config

import (
	"os"
	"strconv"
	"strings"

	"roikit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Output   OutputConfig
	BLS      BLSConfig
}

// DatabaseConfig holds database connection settings. The URL is optional:
// file-based runs never open a connection.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds microdata input settings
type DataConfig struct {
	InputFile    string
	GroupColumns []string
	ValueColumn  string
	SampleSize   int
	Seed         int64
}

// OutputConfig holds result destinations
type OutputConfig struct {
	WorkbookFile string
	ReportFile   string
}

// BLSConfig holds Bureau of Labor Statistics API settings
type BLSConfig struct {
	APIKey string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			InputFile:    getEnvOrDefault("INPUT_FILE", ""),
			GroupColumns: splitColumns(getEnvOrDefault("GROUP_COLUMNS", "")),
			ValueColumn:  getEnvOrDefault("VALUE_COLUMN", ""),
			SampleSize:   getEnvIntOrDefault("SAMPLE_SIZE", 0),
			Seed:         int64(getEnvIntOrDefault("SAMPLE_SEED", 1)),
		},
		Output: OutputConfig{
			WorkbookFile: getEnvOrDefault("OUTPUT_WORKBOOK", "results.xlsx"),
			ReportFile:   getEnvOrDefault("OUTPUT_REPORT", "report.md"),
		},
		BLS: BLSConfig{
			APIKey: getEnvOrDefault("BLS_API_KEY", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if len(config.Data.GroupColumns) == 0 {
		return errors.ConfigInvalid("GROUP_COLUMNS is required")
	}
	if config.Data.ValueColumn == "" {
		return errors.ConfigInvalid("VALUE_COLUMN is required")
	}
	if config.Data.InputFile == "" && config.Database.URL == "" {
		return errors.ConfigInvalid("either INPUT_FILE or DATABASE_URL is required")
	}
	if config.Data.SampleSize < 0 {
		return errors.ConfigInvalid("SAMPLE_SIZE must not be negative")
	}
	return nil
}

func splitColumns(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			columns = append(columns, trimmed)
		}
	}
	return columns
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
