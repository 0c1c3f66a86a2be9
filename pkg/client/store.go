package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSession is returned by Store.Load when nothing has been saved yet.
var ErrNoSession = errors.New("client: no session stored")

// Store persists a Session between runs. Save replaces the whole session;
// Clear removes it. Implementations must never leave a partially written
// session behind.
type Store interface {
	Load() (Session, error)
	Save(session Session) error
	Clear() error
}

// MemoryStore keeps the session in process memory. Useful for tests and for
// embedding the client in a server-side process.
type MemoryStore struct {
	mu      sync.Mutex
	session Session
	set     bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return Session{}, ErrNoSession
	}
	return s.session, nil
}

func (s *MemoryStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	s.set = false
	return nil
}

// FileStore keeps the session as a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Session, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(b, &session); err != nil {
		return Session{}, err
	}
	if !session.Valid() {
		return Session{}, ErrNoSession
	}
	return session, nil
}

func (s *FileStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// Write to a temp file and rename so a crash cannot leave a torn session.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
