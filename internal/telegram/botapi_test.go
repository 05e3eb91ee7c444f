package telegram

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	method string
	form   map[string]string
}

// fakeBotAPI answers Bot API calls and remembers them. reject decides which
// sendMessage calls fail with a parse error.
type fakeBotAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	reject func(apiCall) bool
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := apiCall{method: path.Base(r.URL.Path), form: readForm(r)}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	reject := f.reject
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case call.method == "sendMessage" && reject != nil && reject(call):
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities"}`)
	case call.method == "sendMessage":
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`)
	default:
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
	}
}

// readForm flattens multipart or JSON parameters into strings.
func readForm(r *http.Request) map[string]string {
	form := map[string]string{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		_ = dec.Decode(&raw)
		for k, v := range raw {
			if s, ok := v.(string); ok {
				form[k] = s
				continue
			}
			if n, ok := v.(json.Number); ok {
				form[k] = n.String()
				continue
			}
			data, _ := json.Marshal(v)
			form[k] = string(data)
		}
		return form
	}
	_ = r.ParseMultipartForm(1 << 20)
	for k, v := range r.Form {
		form[k] = v[0]
	}
	return form
}

func (f *fakeBotAPI) Calls(method string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []apiCall
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

func newFakeBot(t *testing.T) (*bot.Bot, *fakeBotAPI) {
	t.Helper()
	api := &fakeBotAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	b, err := bot.New("42:test-token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)
	return b, api
}

func texts(calls []apiCall) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.form["text"]
	}
	return out
}

func containsTag(c apiCall) bool {
	return strings.Contains(c.form["text"], "<b>")
}
