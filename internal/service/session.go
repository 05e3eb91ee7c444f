package service

import (
	"sync"

	"github.com/set-night/docchat/internal/domain"
)

// SessionState holds the one document the user is currently talking to.
type SessionState struct {
	mu      sync.RWMutex
	session domain.Session
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// Activate replaces the current session. Both values are required; on error
// the state is left as it was.
func (s *SessionState) Activate(storeID, fileName string) error {
	if storeID == "" || fileName == "" {
		return domain.ErrIncompleteSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{StoreID: storeID, FileName: fileName}
	return nil
}

func (s *SessionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
}

func (s *SessionState) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.session.IsZero()
}

// Current returns a copy of the active session.
func (s *SessionState) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, !s.session.IsZero()
}
