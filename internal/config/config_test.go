package config

import (
	"os"
	"testing"
	"time"

	"audiobookd/internal/constants"
)

func TestLoad(t *testing.T) {
	// Test default values
	cfg := Load()

	if cfg.Port != constants.DefaultPort {
		t.Errorf("Expected Port to be %s, got %s", constants.DefaultPort, cfg.Port)
	}

	if cfg.DBPath != constants.DefaultDBPath {
		t.Errorf("Expected DBPath to be %s, got %s", constants.DefaultDBPath, cfg.DBPath)
	}

	if cfg.LogLevel != constants.DefaultLogLevel {
		t.Errorf("Expected LogLevel to be %s, got %s", constants.DefaultLogLevel, cfg.LogLevel)
	}

	if cfg.RequestTimeout != constants.DefaultRequestTimeout {
		t.Errorf("Expected RequestTimeout to be %v, got %v", constants.DefaultRequestTimeout, cfg.RequestTimeout)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DB_PATH", "/tmp/test.db")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("REQUEST_TIMEOUT", "5s")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_PATH")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("REQUEST_TIMEOUT")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be 9090, got %s", cfg.Port)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("Expected DBPath to be /tmp/test.db, got %s", cfg.DBPath)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}

	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("Expected RequestTimeout to be 5s, got %v", cfg.RequestTimeout)
	}
}

func TestLoadWithInvalidTimeout(t *testing.T) {
	os.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	defer os.Unsetenv("REQUEST_TIMEOUT")

	cfg := Load()

	if cfg.RequestTimeout != constants.DefaultRequestTimeout {
		t.Errorf("Expected RequestTimeout to fall back to %v, got %v", constants.DefaultRequestTimeout, cfg.RequestTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, true},
		{"port out of range", func(c *Config) { c.Port = "70000" }, true},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
