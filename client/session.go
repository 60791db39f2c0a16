package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	OwnerID     string `json:"owner_id,omitempty"`
}

type Session struct {
	Token         string `json:"token"`
	ExpiresAt     int64  `json:"expires_at"`
	DashboardPath string `json:"dashboard_path"`
	User          User   `json:"user"`
}

// SessionStore - tempat token disimpan di sisi klien. Get mengembalikan nil bila belum login.
type SessionStore interface {
	Get() (*Session, error)
	Set(session Session) error
	Clear() error
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

type memorySessionStore struct {
	mu      sync.RWMutex
	session *Session
}

func (s *memorySessionStore) Get() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	session := *s.session
	return &session, nil
}

func (s *memorySessionStore) Set(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

func (s *memorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// NewFileSessionStore - sesi disimpan sebagai json, hanya bisa dibaca pemilik file
func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

type fileSessionStore struct {
	mu   sync.Mutex
	path string
}

func (s *fileSessionStore) Get() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "gagal membaca sesi")
	}
	var session Session
	if err = json.Unmarshal(body, &session); err != nil {
		return nil, errors.Wrap(err, "file sesi rusak")
	}
	return &session, nil
}

func (s *fileSessionStore) Set(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "gagal menyimpan sesi")
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "gagal menyimpan sesi")
	}
	return errors.Wrap(os.WriteFile(s.path, body, 0o600), "gagal menyimpan sesi")
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "gagal menghapus sesi")
	}
	return nil
}
