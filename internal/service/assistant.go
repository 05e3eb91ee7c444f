package service

import (
	"context"
	"io"
	"log/slog"
)

// DocumentAPI is the backend the workflows call. DocAPIService is the HTTP
// implementation.
type DocumentAPI interface {
	Upload(ctx context.Context, name string, r io.Reader) (*UploadResult, error)
	Ask(ctx context.Context, storeID, question string) (string, error)
	DeleteStore(ctx context.Context, storeID string) error
}

// Assistant owns the session and transcript of one user and the workflows
// that operate on them.
type Assistant struct {
	Session    *SessionState
	Transcript *Transcript
	Upload     *UploadWorkflow
	Chat       *ChatWorkflow
	Reset      *ResetWorkflow
}

type options struct {
	logger *slog.Logger
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func NewAssistant(api DocumentAPI, ui UI, opts ...Option) *Assistant {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	session := NewSessionState()
	transcript := NewTranscript(ui)

	return &Assistant{
		Session:    session,
		Transcript: transcript,
		Upload: &UploadWorkflow{
			api:     api,
			session: session,
			ui:      ui,
			logger:  o.logger,
		},
		Chat: &ChatWorkflow{
			api:        api,
			session:    session,
			transcript: transcript,
			ui:         ui,
			logger:     o.logger,
		},
		Reset: &ResetWorkflow{
			api:        api,
			session:    session,
			transcript: transcript,
			ui:         ui,
			logger:     o.logger,
		},
	}
}
