// Package session tracks the authenticated identity of the client and
// persists it so a restart reconstructs the same state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"bookkeeper/internal/client/models"
	"bookkeeper/internal/filex"
)

// ErrPartialSession is returned by Save when the token and user are not both
// present. A session is never partially authenticated.
var ErrPartialSession = errors.New("session requires both token and user")

// Session is the authenticated identity and token of the current user.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Store holds the in-memory session and writes every mutation through to a
// single JSON file, token and user together.
//
// Mutation only happens from user-triggered sequential flows (login/logout)
// and from the gateway's 401 handling, so a plain mutex around read/replace
// is all the locking discipline needed.
type Store struct {
	mu      sync.Mutex
	path    string
	current *Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Restore reads the persisted session from disk into memory. A missing file
// means no session and returns (nil, nil). A file holding a partial session
// is treated as absent and removed.
func (s *Store) Restore() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.current = nil
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	if sess.Token == "" || sess.User == nil {
		s.current = nil
		os.Remove(s.path)
		return nil, nil
	}

	s.current = &sess
	return &sess, nil
}

// Save stores sess in memory and persists it atomically.
func (s *Store) Save(sess *Session) error {
	if sess == nil || sess.Token == "" || sess.User == nil {
		return ErrPartialSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := filex.WriteAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.current = sess
	return nil
}

// Clear removes the session from memory and disk. Clearing an absent session
// is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Current returns the in-memory session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the current token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
