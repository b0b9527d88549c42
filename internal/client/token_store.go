package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// TokenStore persists the access token between invocations.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file readable only by the current user.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore stores the token at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenPath is the token location under the user config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}

	return filepath.Join(dir, "falldash", "token"), nil
}

// Path returns where the token is stored.
func (s *FileTokenStore) Path() string {
	return s.path
}

// Load returns an empty token when none was saved.
func (s *FileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read token file")
	}

	return strings.TrimSpace(string(raw)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}

	return errors.Wrap(os.WriteFile(s.path, []byte(token), 0o600), "write token file")
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove token file")
	}

	return nil
}

// MemoryTokenStore keeps the token for the lifetime of the process.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	return nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}
