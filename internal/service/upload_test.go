package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/set-night/docchat/internal/domain"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", ".pdf"},
		{"REPORT.PDF", ".pdf"},
		{"notes.v2.Md", ".md"},
		{"README", ""},
		{"trailing.", "."},
		{".txt", ".txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileExtension(tt.name))
		})
	}
}

func TestUploadRejectsUnsupportedFiles(t *testing.T) {
	names := []string{"notes.docx", "archive", "photo.PNG", "README.", "setup.pdf.exe", "data.csv"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			a, api, ui := newTestAssistant()
			file := &memFile{name: name, content: "x"}

			err := a.Upload.Submit(context.Background(), file)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, name, verr.FileName)
			uploads, _ := api.calls()
			assert.Zero(t, uploads)
			assert.False(t, file.opened)
			assert.Empty(t, ui.Events())
			assert.False(t, a.Session.IsActive())
		})
	}
}

func TestUploadActivatesSession(t *testing.T) {
	a, api, ui := newTestAssistant()
	api.uploadFn = func(name, body string) (*UploadResult, error) {
		return &UploadResult{StoreID: "abc", FileName: "Recipes.PDF"}, nil
	}

	err := a.Upload.Submit(context.Background(), &memFile{name: "Recipes.PDF", content: "%PDF"})
	require.NoError(t, err)

	s, ok := a.Session.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Session{StoreID: "abc", FileName: "Recipes.PDF"}, s)
	assert.Equal(t, "%PDF", api.uploaded)
	assert.Equal(t, []string{
		"busy:" + uploadBusyText,
		"chat-mode:Recipes.PDF",
		"idle",
	}, ui.Events())
}

func TestUploadServiceErrorKeepsSessionEmpty(t *testing.T) {
	a, api, ui := newTestAssistant()
	api.uploadFn = func(string, string) (*UploadResult, error) {
		return nil, &domain.ServiceError{Op: "upload", Status: 500, Detail: "quota exceeded"}
	}

	err := a.Upload.Submit(context.Background(), &memFile{name: "a.txt"})

	var serr *domain.ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "quota exceeded", err.Error())
	assert.False(t, a.Session.IsActive())
	assert.Equal(t, []string{"busy:" + uploadBusyText, "idle"}, ui.Events())
}

func TestUploadIncompleteResponse(t *testing.T) {
	a, api, ui := newTestAssistant()
	api.uploadFn = func(string, string) (*UploadResult, error) {
		return &UploadResult{StoreID: "abc"}, nil
	}

	err := a.Upload.Submit(context.Background(), &memFile{name: "a.md"})

	require.ErrorIs(t, err, domain.ErrIncompleteSession)
	assert.False(t, a.Session.IsActive())
	assert.Equal(t, "idle", ui.Events()[len(ui.Events())-1])
}

func TestUploadOpenFailure(t *testing.T) {
	a, api, ui := newTestAssistant()
	openErr := errors.New("telegram unavailable")

	err := a.Upload.Submit(context.Background(), &memFile{name: "a.md", openErr: openErr})

	var nerr *domain.NetworkError
	require.ErrorAs(t, err, &nerr)
	require.ErrorIs(t, err, openErr)
	uploads, _ := api.calls()
	assert.Zero(t, uploads)
	assert.Equal(t, []string{"busy:" + uploadBusyText, "idle"}, ui.Events())
}

func TestUploadWhileSessionActive(t *testing.T) {
	a, api, ui := newTestAssistant()
	mustActivate(a, "old", "old.pdf")

	err := a.Upload.Submit(context.Background(), &memFile{name: "new.pdf"})

	require.ErrorIs(t, err, domain.ErrSessionActive)
	uploads, _ := api.calls()
	assert.Zero(t, uploads)
	assert.Empty(t, ui.Events())
	s, _ := a.Session.Current()
	assert.Equal(t, "old", s.StoreID)
}

func TestUploadWhileAnotherUploadRuns(t *testing.T) {
	a, api, _ := newTestAssistant()
	started := make(chan struct{})
	release := make(chan struct{})
	api.uploadFn = func(name, _ string) (*UploadResult, error) {
		close(started)
		<-release
		return &UploadResult{StoreID: "s", FileName: name}, nil
	}

	done := make(chan error, 1)
	go func() {
		done <- a.Upload.Submit(context.Background(), &memFile{name: "first.pdf"})
	}()
	<-started

	err := a.Upload.Submit(context.Background(), &memFile{name: "second.pdf"})
	require.ErrorIs(t, err, domain.ErrUploadInProgress)

	close(release)
	require.NoError(t, <-done)
	s, _ := a.Session.Current()
	assert.Equal(t, "first.pdf", s.FileName)
}
