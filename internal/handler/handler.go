package handler

import (
	"github.com/go-telegram/bot"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/service"
	"github.com/set-night/docchat/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot           *bot.Bot
	cfg           *config.Config
	assistant     *service.Assistant
	tgLogger      *telegram.TelegramLogger
	confirmations *Confirmations
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Assistant *service.Assistant
	TgLogger  *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:           deps.Bot,
		cfg:           deps.Cfg,
		assistant:     deps.Assistant,
		tgLogger:      deps.TgLogger,
		confirmations: NewConfirmations(deps.Cfg.Bot.ResetConfirmTTL),
	}
}
