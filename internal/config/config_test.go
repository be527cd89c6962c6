package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "amostras.db", cfg.SampleDatabasePath)
	assert.Equal(t, 0.82, cfg.HeaderThreshold)
	assert.Equal(t, 0.5, cfg.ContentThreshold)
	assert.Equal(t, int64(64<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SAMPLE_DB_PATH", "/tmp/teste.db")
	t.Setenv("HEADER_THRESHOLD", "0.9")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/teste.db", cfg.SampleDatabasePath)
	assert.Equal(t, 0.9, cfg.HeaderThreshold)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("HEADER_THRESHOLD", "oitenta")
	t.Setenv("MAX_UPLOAD_BYTES", "muitos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.82, cfg.HeaderThreshold)
	assert.Equal(t, int64(64<<20), cfg.MaxUploadBytes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"porta vazia", func(c *Config) { c.Port = "" }},
		{"limiar de cabeçalho fora do intervalo", func(c *Config) { c.HeaderThreshold = 1.5 }},
		{"limiar de conteúdo zerado", func(c *Config) { c.ContentThreshold = 0 }},
		{"upload nulo", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"ttl negativo", func(c *Config) { c.SessionTTL = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
