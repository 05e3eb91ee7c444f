package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/set-night/docchat/internal/domain"
)

type fakeAPI struct {
	mu          sync.Mutex
	uploadCalls int
	askCalls    int
	deleted     []string
	uploaded    string

	uploadFn func(name string, body string) (*UploadResult, error)
	askFn    func(ctx context.Context, storeID, question string) (string, error)
	deleteFn func(storeID string) error
}

func (f *fakeAPI) Upload(_ context.Context, name string, r io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.uploadCalls++
	f.uploaded = string(data)
	f.mu.Unlock()
	if f.uploadFn != nil {
		return f.uploadFn(name, string(data))
	}
	return &UploadResult{StoreID: "store-1", FileName: name}, nil
}

func (f *fakeAPI) Ask(ctx context.Context, storeID, question string) (string, error) {
	f.mu.Lock()
	f.askCalls++
	f.mu.Unlock()
	if f.askFn != nil {
		return f.askFn(ctx, storeID, question)
	}
	return "answer to " + question, nil
}

func (f *fakeAPI) DeleteStore(_ context.Context, storeID string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, storeID)
	f.mu.Unlock()
	if f.deleteFn != nil {
		return f.deleteFn(storeID)
	}
	return nil
}

func (f *fakeAPI) calls() (uploads, asks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploadCalls, f.askCalls
}

// recordingUI keeps every signal as a short string, in order.
type recordingUI struct {
	mu       sync.Mutex
	events   []string
	messages []domain.RenderedMessage
}

func (u *recordingUI) record(e string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, e)
}

func (u *recordingUI) ShowBusy(_ context.Context, message string) { u.record("busy:" + message) }
func (u *recordingUI) HideBusy(context.Context)                   { u.record("idle") }
func (u *recordingUI) PresentUploadMode(context.Context)          { u.record("upload-mode") }
func (u *recordingUI) PresentChatMode(_ context.Context, fileName string) {
	u.record("chat-mode:" + fileName)
}
func (u *recordingUI) DisableInput(context.Context)    { u.record("input-off") }
func (u *recordingUI) EnableInput(context.Context)     { u.record("input-on") }
func (u *recordingUI) ClearTranscript(context.Context) { u.record("clear") }
func (u *recordingUI) AppendMessage(_ context.Context, msg domain.RenderedMessage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, "append:"+string(msg.Sender))
	u.messages = append(u.messages, msg)
}

func (u *recordingUI) Events() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.events...)
}

type memFile struct {
	name    string
	content string
	openErr error
	opened  bool
}

func (f *memFile) Name() string { return f.name }

func (f *memFile) Open(context.Context) (io.ReadCloser, error) {
	f.opened = true
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func newTestAssistant() (*Assistant, *fakeAPI, *recordingUI) {
	api := &fakeAPI{}
	ui := &recordingUI{}
	return NewAssistant(api, ui), api, ui
}

func mustActivate(a *Assistant, storeID, name string) {
	if err := a.Session.Activate(storeID, name); err != nil {
		panic(fmt.Sprintf("activate: %v", err))
	}
}
