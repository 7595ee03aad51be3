package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"

	"bookmarkhub/internal/domain/blob"
)

// FS хранит объекты в локальной директории: <root>/<bucket>/<key>.
type FS struct {
	root string
	log  *slog.Logger
}

func NewFS(root string, log *slog.Logger) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve blob root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &FS{root: abs, log: log.With("component", "fs_store")}, nil
}

func (s *FS) Put(_ context.Context, bucket, key string, obj blob.Object) error {
	full, err := s.safePath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, obj.Data, 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	if err := os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit object: %w", err)
	}

	s.log.Debug("object stored", "bucket", bucket, "key", key, "size", len(obj.Data))
	return nil
}

func (s *FS) Get(_ context.Context, bucket, key string) (blob.Object, error) {
	full, err := s.safePath(bucket, key)
	if err != nil {
		return blob.Object{}, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return blob.Object{}, blob.ErrNotFound
		}
		return blob.Object{}, fmt.Errorf("read object: %w", err)
	}
	return blob.Object{Data: data}, nil
}

// safePath не выпускает путь за пределы корня.
func (s *FS) safePath(bucket, key string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return "", blob.ErrInvalidPath
	}
	full := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	rel, err := filepath.Rel(filepath.Join(s.root, bucket), full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", blob.ErrInvalidPath
	}
	return full, nil
}
