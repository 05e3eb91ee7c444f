package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5*time.Minute, cfg.Bot.ResetConfirmTTL)
	assert.True(t, cfg.IsOwner(42))
	assert.False(t, cfg.IsOwner(43))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "42")
	t.Setenv("API_BASE_URL", "https://docs.example.com")
	t.Setenv("API_REQUEST_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("RESET_CONFIRM_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.com", cfg.API.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, int64(-100123), cfg.Bot.LogTelegramChatID)
	assert.Equal(t, 30*time.Second, cfg.Bot.ResetConfirmTTL)
}

func TestLoadRequiresBotSettings(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OWNER_ID", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadClient()
	assert.ErrorContains(t, err, "LOG_FORMAT")
}

func TestLoadClientIgnoresBotSettings(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("API_BASE_URL", "http://127.0.0.1:9000")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.API.BaseURL)
}
