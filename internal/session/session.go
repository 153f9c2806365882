// Package session persists the authenticated session: the server URL, the
// opaque bearer token, and the resolved user. One JSON file under the user's
// config dir is the only durable client-side state; there is no local mirror
// of server entities.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"verdant/internal/models"
)

type Session struct {
	Server string      `json:"server"`
	Token  string      `json:"token"`
	User   models.User `json:"user"`
}

// Store holds the current session in memory and mirrors it to disk. It is
// safe for concurrent use: the API client reads the token from in-flight
// requests while a 401 handler may be clearing it.
type Store struct {
	mu      sync.Mutex
	path    string
	current Session
}

// DefaultPath returns the session file location under the user's config dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "verdant-session.json"
	}
	return filepath.Join(home, ".config", "verdant", "session.json")
}

// NewStore opens the store at path and loads any existing session. A missing
// file is a logged-out state, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(data, &s.current); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", path, err)
	}
	return s, nil
}

// Current returns a copy of the in-memory session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the bearer token, empty when logged out. Suitable as the API
// client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Save replaces the session and writes it to disk.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear wipes the session from memory and disk. Used on logout and on any
// 401 from the server.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
