package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("DB_ENABLED", "")
	t.Setenv("EXPORT_TTL", "")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "")
	t.Setenv("DEFAULT_VOICE_OPTION", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Storage.ExportTTL)
	assert.Equal(t, 512, cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, "US English", cfg.Speech.DefaultVoice)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("EXPORT_TTL", "90m")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "not-a-number")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 90*time.Minute, cfg.Storage.ExportTTL)
	assert.Equal(t, 512, cfg.Gemini.MaxOutputTokens)
}

func TestLoadNonPositiveDurationsUseDefaults(t *testing.T) {
	t.Setenv("EXPORT_SWEEP_INTERVAL", "0s")
	t.Setenv("EXPORT_TTL", "-5m")

	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.Storage.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Storage.ExportTTL)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "coach", Password: "secret", DBName: "prep",
	}}

	assert.Equal(t,
		"host=db port=5433 user=coach password=secret dbname=prep sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}
