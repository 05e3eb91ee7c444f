package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/docchat/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/close", bot.MatchTypePrefix, h.handleClose)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, h.handleStatus)

	// Documents
	h.bot.RegisterHandlerMatchFunc(isDocument, h.handleDocument)

	// Questions
	h.bot.RegisterHandlerMatchFunc(isQuestion, h.handleText)

	// Close callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackClose, bot.MatchTypeExact, h.handleCloseButton)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackResetYes, bot.MatchTypePrefix, h.handleResetYes)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackResetNo, bot.MatchTypePrefix, h.handleResetNo)
}

func isDocument(update *models.Update) bool {
	return update.Message != nil && update.Message.Document != nil
}

// isQuestion matches plain text that is not a command.
func isQuestion(update *models.Update) bool {
	if update.Message == nil || update.Message.Document != nil {
		return false
	}
	text := update.Message.Text
	return text != "" && !strings.HasPrefix(text, "/")
}

// answerCallback acknowledges a callback query so the client stops spinning.
func answerCallback(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
