package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("LOG_DIR", "")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sw")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com,")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/sw", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
}
