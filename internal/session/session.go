// Package session persists the operator's login between CLI invocations.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/deespora/backoffice/internal/config"
	ierr "github.com/deespora/backoffice/internal/errors"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is what a successful login leaves behind. The key names are the
// ones the admin pages have always stored.
type Session struct {
	Token string         `json:"adminToken"`
	Email string         `json:"adminEmail"`
	User  map[string]any `json:"adminUser,omitempty"`
}

// Store loads and saves the current session. Load returns nil, nil when
// nobody is logged in.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session in a JSON file readable only by its owner
type FileStore struct {
	path string
}

// NewFileStore uses cfg.Session.Path, defaulting to
// $XDG_CONFIG_HOME/backoffice/session.json
func NewFileStore(cfg *config.Configuration) (*FileStore, error) {
	path := cfg.Session.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Could not locate a directory to store the session in").
				Mark(ierr.ErrSystem)
		}
		path = filepath.Join(dir, "backoffice", "session.json")
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the saved session").
			Mark(ierr.ErrSystem)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// a corrupt session is the same as no session
		return nil, nil
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return ierr.WithError(err).
			WithHint("Could not create the session directory").
			Mark(ierr.ErrSystem)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return ierr.WithError(err).
			WithHint("Could not save the session").
			Mark(ierr.ErrSystem)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return ierr.WithError(err).
			WithHint("Could not save the session").
			Mark(ierr.ErrSystem)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return ierr.WithError(err).
			WithHint("Could not remove the saved session").
			Mark(ierr.ErrSystem)
	}
	return nil
}

// MemoryStore keeps the session in memory
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemoryStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.session = &cp
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
