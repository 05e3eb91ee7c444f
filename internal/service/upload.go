package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/set-night/docchat/internal/domain"
)

const uploadBusyText = "Uploading and processing document..."

var allowedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
}

// FileExtension returns the lowercased extension of name including the dot,
// or "" when name has no dot.
func FileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return "." + strings.ToLower(name[i+1:])
}

// UploadWorkflow sends a document to the backend and opens a session for it.
type UploadWorkflow struct {
	api       DocumentAPI
	session   *SessionState
	ui        UI
	logger    *slog.Logger
	uploading atomic.Bool
}

// Submit validates file, uploads it and activates the session. Rejected
// files never reach the network. The busy indicator is cleared on every
// path that raised it.
func (w *UploadWorkflow) Submit(ctx context.Context, file domain.File) error {
	name := file.Name()
	ext := FileExtension(name)
	if !allowedExtensions[ext] {
		return &domain.ValidationError{FileName: name, Ext: ext}
	}
	if w.session.IsActive() {
		return domain.ErrSessionActive
	}
	if !w.uploading.CompareAndSwap(false, true) {
		return domain.ErrUploadInProgress
	}
	defer w.uploading.Store(false)

	w.ui.ShowBusy(ctx, uploadBusyText)
	defer w.ui.HideBusy(ctx)

	rc, err := file.Open(ctx)
	if err != nil {
		w.logger.Error("open document", "file", name, "error", err)
		return &domain.NetworkError{Op: "open file", Err: err}
	}
	defer rc.Close()

	res, err := w.api.Upload(ctx, name, rc)
	if err != nil {
		w.logger.Error("upload document", "file", name, "error", err)
		return err
	}

	if err := w.session.Activate(res.StoreID, res.FileName); err != nil {
		return fmt.Errorf("activate session: %w", err)
	}
	w.logger.Info("document uploaded",
		"store_id", res.StoreID,
		"file", res.FileName,
		"message", res.Message,
	)

	w.ui.PresentChatMode(ctx, res.FileName)
	return nil
}
