package blob

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("object not found")
	ErrInvalidPath   = errors.New("invalid object path")
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrTooLarge      = errors.New("object too large")
	ErrEmpty         = errors.New("object is empty")
	ErrForbidden     = errors.New("object path belongs to another owner")
)

// Object - содержимое объекта хранилища.
type Object struct {
	Data        []byte
	ContentType string
}

// Store - бэкенд хранения объектов (MinIO или локальная директория).
type Store interface {
	Put(ctx context.Context, bucket, key string, obj Object) error
	Get(ctx context.Context, bucket, key string) (Object, error)
}
