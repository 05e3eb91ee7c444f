package handler

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/config"
	"github.com/set-night/docchat/internal/telegram"
)

const commandsText = "📋 <b>Commands:</b>\n" +
	"/status — Show the open document\n" +
	"/close — Close the document\n" +
	"/help — This message"

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	var text string
	var markup models.ReplyMarkup
	if s, ok := h.assistant.Session.Current(); ok {
		text = fmt.Sprintf("📄 <b>%s</b> is open.\n\n%s\n\n%s",
			html.EscapeString(s.FileName), config.WelcomeText, commandsText)
		markup = telegram.CloseKeyboard()
	} else {
		text = fmt.Sprintf("👋 %s\n\n%s", config.UploadPromptText, commandsText)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: markup,
	})
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	s, ok := h.assistant.Session.Current()
	if !ok {
		telegram.SendText(ctx, b, chatID, config.NoDocumentText, nil)
		return
	}

	text := fmt.Sprintf("📄 <b>%s</b>\n💬 %d messages",
		html.EscapeString(s.FileName), h.assistant.Transcript.Len())
	if h.assistant.Chat.Busy() {
		text += "\n⏳ answering a question"
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: telegram.CloseKeyboard(),
	})
}
