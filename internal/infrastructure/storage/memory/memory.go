// Package memory - хранилище в памяти процесса для локального запуска и тестов.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookmarkhub/internal/domain/blob"
	"bookmarkhub/internal/domain/item"
	"bookmarkhub/internal/domain/session"
	"bookmarkhub/internal/domain/user"
)

type Storage struct {
	mu       sync.RWMutex
	items    map[string]item.Item
	users    map[string]user.User
	sessions map[string]sessionRow
	objects  map[string]blob.Object
	now      func() time.Time
}

type sessionRow struct {
	userID    string
	expiresAt time.Time
}

func New() *Storage {
	return &Storage{
		items:    make(map[string]item.Item),
		users:    make(map[string]user.User),
		sessions: make(map[string]sessionRow),
		objects:  make(map[string]blob.Object),
		now:      time.Now,
	}
}

func (s *Storage) Ping(context.Context) error { return nil }

func (s *Storage) Items() *ItemRepository       { return &ItemRepository{s} }
func (s *Storage) Users() *UserRepository       { return &UserRepository{s} }
func (s *Storage) Sessions() *SessionRepository { return &SessionRepository{s} }
func (s *Storage) Blobs() *BlobStore            { return &BlobStore{s} }

type ItemRepository struct{ s *Storage }

func matches(it item.Item, ownerID string, f item.Filter) bool {
	if it.OwnerID != ownerID {
		return false
	}
	switch f.Field {
	case "":
		return true
	case item.FieldID:
		return it.ID == f.Value
	case item.FieldOwnerID:
		return it.OwnerID == f.Value
	case item.FieldKind:
		return string(it.Kind) == f.Value
	}
	return false
}

func (r *ItemRepository) List(_ context.Context, ownerID string, filter item.Filter, order item.Order) ([]item.Item, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	out := make([]item.Item, 0)
	for _, it := range r.s.items {
		if matches(it, ownerID, filter) {
			it.Tags = item.NewTags(it.Tags...)
			out = append(out, it)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		var c int
		switch order.Field {
		case item.FieldTitle:
			c = strings.Compare(out[i].Title, out[j].Title)
		default:
			c = out[i].CreatedAt.Compare(out[j].CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(out[i].ID, out[j].ID)
		}
		if order.Desc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

func (r *ItemRepository) Create(_ context.Context, it *item.Item) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it.ID = uuid.NewString()
	stored := *it
	stored.Tags = item.NewTags(it.Tags...)
	r.s.items[it.ID] = stored
	return it.ID, nil
}

func (r *ItemRepository) Delete(_ context.Context, ownerID string, filter item.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, it := range r.s.items {
		if matches(it, ownerID, filter) {
			delete(r.s.items, id)
			n++
		}
	}
	return n, nil
}

type UserRepository struct{ s *Storage }

func (r *UserRepository) Create(_ context.Context, email, passwordHash string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return user.User{}, user.ErrAlreadyExists
		}
	}
	u := user.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		CreatedAt: r.s.now(),
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

type SessionRepository struct{ s *Storage }

func (r *SessionRepository) Create(_ context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[tokenHash] = sessionRow{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *SessionRepository) Validate(_ context.Context, tokenHash string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.sessions[tokenHash]
	if !ok || !row.expiresAt.After(r.s.now()) {
		return "", session.ErrInvalidSession
	}
	return row.userID, nil
}

func (r *SessionRepository) Delete(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, tokenHash)
	return nil
}

// ExpireAll делает все выданные сессии просроченными.
func (r *SessionRepository) ExpireAll() {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, row := range r.s.sessions {
		row.expiresAt = time.Time{}
		r.s.sessions[hash] = row
	}
}

type BlobStore struct{ s *Storage }

func (b *BlobStore) Put(_ context.Context, bucket, key string, obj blob.Object) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	b.s.objects[bucket+"/"+key] = blob.Object{Data: data, ContentType: obj.ContentType}
	return nil
}

func (b *BlobStore) Get(_ context.Context, bucket, key string) (blob.Object, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	obj, ok := b.s.objects[bucket+"/"+key]
	if !ok {
		return blob.Object{}, blob.ErrNotFound
	}
	return obj, nil
}
