package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/telegram"
)

func (h *Handler) handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case !h.assistant.Session.IsActive():
		telegram.SendText(ctx, b, msg.Chat.ID, config.NoDocumentText, nil)
	case h.assistant.Chat.Busy():
		telegram.SendText(ctx, b, msg.Chat.ID, config.ChatBusyText, nil)
	default:
		h.assistant.Chat.Ask(ctx, msg.Text)
	}
}
