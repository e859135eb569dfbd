package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// sessionTTL is how long an admin login stays valid.
const sessionTTL = 24 * time.Hour

// sessionStore tracks admin session tokens in memory. Tokens do not
// survive a restart; admins just log in again.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // token -> created
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]time.Time)}
}

// Create mints a new random token.
func (s *sessionStore) Create() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = time.Now()
	s.mu.Unlock()

	s.cleanup()
	return token, nil
}

// Valid reports whether a token exists and has not expired.
func (s *sessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	created, ok := s.sessions[token]
	s.mu.RUnlock()
	return ok && time.Since(created) <= sessionTTL
}

// Delete revokes a token.
func (s *sessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// cleanup drops expired sessions.
func (s *sessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, created := range s.sessions {
		if time.Since(created) > sessionTTL {
			delete(s.sessions, token)
		}
	}
}
