package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Config holds all configuration for our application
type Config struct {
	Port            string
	Origin          string
	Environment     string
	StorageDriver   string
	DataDir         string
	SessionTTLHours int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	sessionTTLHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}

	driver := getEnv("STORAGE_DRIVER", DriverFile)
	if driver != DriverFile && driver != DriverMemory {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be %q or %q", driver, DriverFile, DriverMemory)
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		Origin:          getEnv("ORIGIN", "http://localhost:5173"),
		Environment:     getEnv("NODE_ENV", "development"),
		StorageDriver:   driver,
		DataDir:         getEnv("DATA_DIR", "data"),
		SessionTTLHours: sessionTTLHours,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
