package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SessionStore persists the session to disk so the TUI stays logged in
// across runs.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}

		path = filepath.Join(home, ".homeledger", "session.json")
	}

	return &SessionStore{path: path}
}

// Load hydrates the persisted session. A file that fails to parse or
// fails shape verification is wiped and reported as absent.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil || !valid(&session) {
		_ = s.Clear()
		return nil, nil
	}

	return &session, nil
}

func valid(s *Session) bool {
	if s.Token == "" || s.User.Email == "" {
		return false
	}

	return s.User.Role == "admin" || s.User.Role == "viewer"
}

func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	return nil
}

// Clear wipes the persisted session. Used on logout and on any parse
// failure during hydration.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}

	return nil
}
