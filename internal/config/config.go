// Package config carries the runtime settings of the validation
// server, loaded from environment variables with sane defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full server configuration.
type Config struct {
	// Server
	Port string `json:"port"`

	// Learned-sample database
	SampleDatabasePath string        `json:"sample_database_path"`
	MaxOpenConns       int           `json:"max_open_conns"`
	MaxIdleConns       int           `json:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `json:"conn_max_lifetime"`

	// Upload handling
	MaxUploadBytes int64         `json:"max_upload_bytes"`
	SessionTTL     time.Duration `json:"session_ttl"`

	// Column mapping
	HeaderThreshold  float64 `json:"header_threshold"`
	ContentThreshold float64 `json:"content_threshold"`

	// Rate limiting
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateLimitBurst     int     `json:"rate_limit_burst"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("SERVER_PORT", "8080"),
		SampleDatabasePath: getEnv("SAMPLE_DB_PATH", "amostras.db"),
		MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime:    getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", 64<<20),
		SessionTTL:         getEnvDuration("SESSION_TTL", 30*time.Minute),
		HeaderThreshold:    getEnvFloat("HEADER_THRESHOLD", 0.82),
		ContentThreshold:   getEnvFloat("CONTENT_THRESHOLD", 0.5),
		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("config: port must not be empty")
	}
	if c.SampleDatabasePath == "" {
		return fmt.Errorf("config: sample database path must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: max upload size must be positive, got %d", c.MaxUploadBytes)
	}
	if c.HeaderThreshold <= 0 || c.HeaderThreshold > 1 {
		return fmt.Errorf("config: header threshold must be in (0, 1], got %v", c.HeaderThreshold)
	}
	if c.ContentThreshold <= 0 || c.ContentThreshold > 1 {
		return fmt.Errorf("config: content threshold must be in (0, 1], got %v", c.ContentThreshold)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session TTL must be positive, got %v", c.SessionTTL)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
