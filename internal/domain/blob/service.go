package blob

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"golang.org/x/exp/slog"
)

// MaxObjectSize - предельный размер загружаемого файла.
const MaxObjectSize = 10 << 20

type Servicer interface {
	Upload(ctx context.Context, ownerID, bucket, key string, data []byte) (string, error)
	Download(ctx context.Context, bucket, key string) (Object, error)
}

type Service struct {
	store   Store
	buckets map[string]bool
	log     *slog.Logger
}

func NewService(store Store, buckets []string, log *slog.Logger) *Service {
	allowed := make(map[string]bool, len(buckets))
	for _, b := range buckets {
		allowed[b] = true
	}
	return &Service{
		store:   store,
		buckets: allowed,
		log:     log.With("component", "blob_service"),
	}
}

// Upload сохраняет объект. Ключ обязан начинаться с "<ownerID>/".
func (s *Service) Upload(ctx context.Context, ownerID, bucket, key string, data []byte) (string, error) {
	if !s.buckets[bucket] {
		return "", ErrUnknownBucket
	}
	key, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	if owner, _, _ := strings.Cut(key, "/"); owner != ownerID {
		return "", ErrForbidden
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxObjectSize {
		return "", ErrTooLarge
	}

	obj := Object{Data: data, ContentType: ContentType(key, data)}
	if err := s.store.Put(ctx, bucket, key, obj); err != nil {
		s.log.Error("failed to put object", "bucket", bucket, "key", key, "error", err)
		return "", fmt.Errorf("put object: %w", err)
	}

	s.log.Info("object uploaded", "bucket", bucket, "key", key, "size", len(data))
	return bucket + "/" + key, nil
}

// Download отдаёт объект для публичной ссылки.
func (s *Service) Download(ctx context.Context, bucket, key string) (Object, error) {
	if !s.buckets[bucket] {
		return Object{}, ErrNotFound
	}
	key, err := CleanKey(key)
	if err != nil {
		return Object{}, err
	}

	obj, err := s.store.Get(ctx, bucket, key)
	if err != nil {
		return Object{}, err
	}
	if obj.ContentType == "" {
		obj.ContentType = ContentType(key, obj.Data)
	}
	return obj, nil
}

// CleanKey нормализует ключ объекта и отвергает выход за пределы бакета.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, "/../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// ContentType определяет тип по расширению, затем по содержимому.
func ContentType(key string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
