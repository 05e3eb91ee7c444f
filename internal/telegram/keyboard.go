package telegram

import (
	"github.com/go-telegram/bot/models"
)

// Callback data prefixes.
const (
	CallbackClose    = "close"
	CallbackResetYes = "reset_yes_"
	CallbackResetNo  = "reset_no_"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// CloseKeyboard offers to close the active document.
func CloseKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(InlineButton("✖ Close document", CallbackClose)))
}

// ConfirmResetKeyboard asks to confirm closing. nonce ties the answer to one
// prompt so stale buttons cannot close a later document.
func ConfirmResetKeyboard(nonce string) *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(
		InlineButton("Yes, close it", CallbackResetYes+nonce),
		InlineButton("Cancel", CallbackResetNo+nonce),
	))
}
