// Package remote - клиент платформы: табличный API, авторизация и файловое хранилище.
package remote

import (
	"context"
	"errors"
	"time"

	"bookmarkhub/internal/domain/item"
)

const (
	TableBookmarks  = "bookmarks"
	BucketBookmarks = "bookmarks"
)

var ErrNotAuthenticated = errors.New("вход не выполнен")

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Session - активная сессия пользователя.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// Store - табличные операции.
type Store interface {
	Query(ctx context.Context, table string, filter item.Filter, order item.Order) ([]item.Item, error)
	Insert(ctx context.Context, table string, rec item.Item) (string, error)
	Delete(ctx context.Context, table string, filter item.Filter) (int64, error)
}

// Blobs - файловое хранилище. PublicURL не обращается к сети.
type Blobs interface {
	UploadBlob(ctx context.Context, bucket, path string, data []byte) error
	PublicURL(bucket, path string) string
}

type Auth interface {
	CurrentSession(ctx context.Context) (*Session, error)
	// OnSessionChange подписывает на смену сессии; nil означает выход или истечение.
	OnSessionChange(fn func(*Session)) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
}

type Remote interface {
	Store
	Blobs
	Auth
}
