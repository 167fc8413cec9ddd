// Package config loads application configuration from the environment, with
// optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port string

	// Backend selection: postgres, sqlite, memory
	DataBackend string

	// Remote store
	PostgresDSN string

	// Local fallback store
	SQLiteDBPath string

	// Session identity for the remote store. Empty means unauthenticated:
	// the application uses the local fallback store.
	UserID string

	// Export output directory for the report CLI
	ExportDir string

	// Dashboard cache
	CacheTTL  time.Duration
	CacheSize int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8081"),
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/budgetly.db"),
		UserID:       getEnv("BUDGETLY_USER_ID", ""),
		ExportDir:    getEnv("EXPORT_DIR", "./exports"),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
		CacheSize:    getEnvInt("CACHE_SIZE", 64),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"postgres", "sqlite", "memory"}
	isValid := false
	for _, b := range validBackends {
		if c.DataBackend == b {
			isValid = true
			break
		}
	}
	if !isValid {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "postgres" && c.PostgresDSN == "" {
		errs = append(errs, "POSTGRES_DSN is required when using the postgres backend")
	}

	if c.DataBackend == "postgres" || c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "sqlite database path cannot be empty")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errs = append(errs, fmt.Sprintf("cannot create sqlite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.CacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}
	if c.CacheSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
