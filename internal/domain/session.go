package domain

// Session identifies the document currently loaded on the backend.
// StoreID and FileName are either both set or both empty.
type Session struct {
	StoreID  string
	FileName string
}

// IsZero reports whether no document is loaded.
func (s Session) IsZero() bool {
	return s.StoreID == "" && s.FileName == ""
}

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one transcript entry. Messages are never modified after creation.
type Message struct {
	Text   string
	Sender Sender
}

// RenderedMessage is the display form of a Message. When HTML is false Body
// must be shown verbatim.
type RenderedMessage struct {
	Sender Sender
	Body   string
	HTML   bool
}
