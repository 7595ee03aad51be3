package remote

import (
	"errors"
	"sync"
	"time"
)

var ErrNoToken = errors.New("сохранённая сессия не найдена")

// StoredToken - токен, переживающий перезапуск клиента.
type StoredToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (t StoredToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

type TokenStore interface {
	Load() (StoredToken, error)
	Save(token StoredToken) error
	Clear() error
}

// MemoryTokenStore - временное in-memory хранилище токена
type MemoryTokenStore struct {
	mu    sync.Mutex
	token *StoredToken
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Load() (StoredToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == nil {
		return StoredToken{}, ErrNoToken
	}
	return *m.token, nil
}

func (m *MemoryTokenStore) Save(token StoredToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = &token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = nil
	return nil
}
