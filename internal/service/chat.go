package service

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/set-night/docchat/internal/domain"
)

const chatErrorPrefix = "Sorry, I encountered an error: "

// ChatWorkflow runs one question at a time against the active document.
type ChatWorkflow struct {
	api        DocumentAPI
	session    *SessionState
	transcript *Transcript
	ui         UI
	logger     *slog.Logger
	busy       atomic.Bool
}

// Busy reports whether a question is in flight.
func (w *ChatWorkflow) Busy() bool {
	return w.busy.Load()
}

// Ask sends question and appends both sides of the exchange to the
// transcript. Blank questions, a missing session or a question already in
// flight make it return without doing anything. Failures are written to the
// transcript as an assistant message instead of being returned.
//
// Once started, an exchange is not cancelled by ctx.
func (w *ChatWorkflow) Ask(ctx context.Context, question string) {
	question = strings.TrimSpace(question)
	current, ok := w.session.Current()
	if question == "" || !ok {
		return
	}
	if !w.busy.CompareAndSwap(false, true) {
		return
	}

	ctx = context.WithoutCancel(ctx)
	w.ui.DisableInput(ctx)
	defer w.ui.EnableInput(ctx)
	defer w.busy.Store(false)

	w.transcript.Append(ctx, domain.Message{Text: question, Sender: domain.SenderUser})

	answer, err := w.api.Ask(ctx, current.StoreID, question)
	if err != nil {
		w.logger.Error("chat request", "store_id", current.StoreID, "error", err)
		answer = chatErrorPrefix + err.Error()
	}

	// The document may have been closed while we waited.
	if now, ok := w.session.Current(); !ok || now.StoreID != current.StoreID {
		w.logger.Warn("dropping answer for closed document", "store_id", current.StoreID)
		return
	}
	w.transcript.Append(ctx, domain.Message{Text: answer, Sender: domain.SenderAssistant})
}
