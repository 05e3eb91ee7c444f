package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// APIConfig points at the document question-answering backend.
type APIConfig struct {
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	// Zero means no timeout.
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"0s"`
}

type LogConfig struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`

	// Rotating file sink, disabled when File is empty.
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"30"`
}

type BotConfig struct {
	Token string `env:"BOT_TOKEN,required,notEmpty"`
	// Only this Telegram user may talk to the bot.
	OwnerID int64 `env:"OWNER_ID,required,notEmpty"`

	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicDocument  int   `env:"LOG_TOPIC_DOCUMENT"`

	ResetConfirmTTL time.Duration `env:"RESET_CONFIRM_TTL" envDefault:"5m"`
}

// Config is everything the Telegram bot needs.
type Config struct {
	API APIConfig
	Log LogConfig
	Bot BotConfig
}

// ClientConfig is the subset used by the terminal client.
type ClientConfig struct {
	API APIConfig
	Log LogConfig
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Log.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Log.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c LogConfig) validate() error {
	switch c.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("parse config: LOG_FORMAT must be json or text, got %q", c.Format)
	}
}

// IsOwner reports whether telegramID may use the bot.
func (c *Config) IsOwner(telegramID int64) bool {
	return telegramID == c.Bot.OwnerID
}
