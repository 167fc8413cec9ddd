package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Port:         "8081",
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(t.TempDir(), "budgetly.db"),
		ExportDir:    t.TempDir(),
		CacheTTL:     5 * time.Minute,
		CacheSize:    64,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.CacheSize != 64 {
		t.Errorf("CacheSize = %d, want 64", cfg.CacheSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("BUDGETLY_USER_ID", "user-7")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CACHE_SIZE", "8")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "memory" || cfg.UserID != "user-7" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.CacheTTL != 30*time.Second || cfg.CacheSize != 8 {
		t.Errorf("cache settings = %v/%d", cfg.CacheTTL, cfg.CacheSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:   "memory needs no sqlite path",
			mutate: func(c *Config) { c.DataBackend = "memory"; c.SQLiteDBPath = "" },
		},
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Port = "http" },
			wantErr: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: "invalid port",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.DataBackend = "redis" },
			wantErr: "invalid data backend",
		},
		{
			name:    "postgres requires dsn",
			mutate:  func(c *Config) { c.DataBackend = "postgres"; c.PostgresDSN = "" },
			wantErr: "POSTGRES_DSN is required",
		},
		{
			name:    "sqlite path required",
			mutate:  func(c *Config) { c.SQLiteDBPath = "" },
			wantErr: "sqlite database path",
		},
		{
			name:    "cache ttl too small",
			mutate:  func(c *Config) { c.CacheTTL = 100 * time.Millisecond },
			wantErr: "invalid cache TTL",
		},
		{
			name:    "cache size too small",
			mutate:  func(c *Config) { c.CacheSize = 0 },
			wantErr: "invalid cache size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Port = "bad"
	cfg.DataBackend = "redis"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid port") || !strings.Contains(msg, "invalid data backend") {
		t.Errorf("expected both errors reported, got: %v", msg)
	}
}
