package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStorage persists the bearer token under a single durable key so a
// restarted client can hydrate without logging in again.
type TokenStorage interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStorage stores the token in a file. This is the durable storage
// a desktop or CLI consumer of the console API uses in place of the web
// client's localStorage key.
type FileTokenStorage struct {
	path string
}

// NewFileTokenStorage creates a FileTokenStorage at path.
func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

// Load implements TokenStorage. A missing file is not an error.
func (s *FileTokenStorage) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return string(raw), nil
}

// Save implements TokenStorage. The token file is owner-readable only.
func (s *FileTokenStorage) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear implements TokenStorage. Clearing an already-empty store is not an
// error, so logout stays idempotent.
func (s *FileTokenStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// MemoryTokenStorage is an in-memory TokenStorage for tests and ephemeral
// sessions.
type MemoryTokenStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStorage creates an empty MemoryTokenStorage. Pass a token
// to SeedToken to simulate a previous session.
func NewMemoryTokenStorage() *MemoryTokenStorage {
	return &MemoryTokenStorage{}
}

// SeedToken pre-populates the store, as if a prior run had saved a token.
func (s *MemoryTokenStorage) SeedToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Load implements TokenStorage.
func (s *MemoryTokenStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save implements TokenStorage.
func (s *MemoryTokenStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear implements TokenStorage.
func (s *MemoryTokenStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
