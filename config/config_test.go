package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_SOURCE", "AUTH_REQUIRED", "DB_HOST", "DB_MAX_RETRIES", "MAP_OUTPUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceEmbedded, cfg.DataSource)
	assert.Equal(t, "map_bandung.html", cfg.MapOutput)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 30, cfg.Database.MaxRetries)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "DB")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_MAX_RETRIES", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SourceDB, cfg.DataSource)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 3, cfg.Database.MaxRetries)
	assert.Contains(t, cfg.Database.DSN(), "host=postgres")
}

func TestLoadUnknownSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetFallbacks(t *testing.T) {
	t.Setenv("X_BOOL", "not-a-bool")
	t.Setenv("X_INT", "abc")
	t.Setenv("X_STR", "  ")

	assert.True(t, GetBool("X_BOOL", true))
	assert.Equal(t, 7, GetInt("X_INT", 7))
	assert.Equal(t, "fallback", Get("X_STR", "fallback"))
}
