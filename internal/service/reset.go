package service

import (
	"context"
	"log/slog"
)

// ResetWorkflow closes the active document and returns to upload mode.
type ResetWorkflow struct {
	api        DocumentAPI
	session    *SessionState
	transcript *Transcript
	ui         UI
	logger     *slog.Logger
}

// Reset does nothing unless confirmed. The remote store is deleted on a best
// effort basis; local state is cleared even if that fails.
func (w *ResetWorkflow) Reset(ctx context.Context, confirmed bool) {
	if !confirmed {
		return
	}

	if current, ok := w.session.Current(); ok {
		if err := w.api.DeleteStore(ctx, current.StoreID); err != nil {
			w.logger.Warn("delete store", "store_id", current.StoreID, "error", err)
		} else {
			w.logger.Info("store deleted", "store_id", current.StoreID)
		}
	}

	w.session.Clear()
	w.transcript.Clear(ctx)
	w.ui.PresentUploadMode(ctx)
}
