package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/domain/blob"
)

// MinIOConfig - параметры подключения к S3-совместимому хранилищу.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type MinIO struct {
	client *miniogo.Client
	log    *slog.Logger
}

func NewMinIO(ctx context.Context, cfg MinIOConfig, buckets []string, log *slog.Logger) (*MinIO, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	m := &MinIO{client: client, log: log.With("component", "minio_store")}
	for _, bucket := range buckets {
		if err := m.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	m.log.Info("minio store initialized", "endpoint", cfg.Endpoint, "buckets", buckets)
	return m, nil
}

func (m *MinIO) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket %s: %w", bucket, err)
	}
	m.log.Info("bucket created", "bucket", bucket)
	return nil
}

func (m *MinIO) Put(ctx context.Context, bucket, key string, obj blob.Object) error {
	_, err := m.client.PutObject(
		ctx,
		bucket,
		key,
		bytes.NewReader(obj.Data),
		int64(len(obj.Data)),
		miniogo.PutObjectOptions{ContentType: obj.ContentType},
	)
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}

	m.log.Debug("object stored", "bucket", bucket, "key", key, "size", len(obj.Data))
	return nil
}

func (m *MinIO) Get(ctx context.Context, bucket, key string) (blob.Object, error) {
	o, err := m.client.GetObject(ctx, bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return blob.Object{}, fmt.Errorf("get object: %w", err)
	}
	defer o.Close()

	info, err := o.Stat()
	if err != nil {
		if isNoSuchKey(err) {
			return blob.Object{}, blob.ErrNotFound
		}
		return blob.Object{}, fmt.Errorf("stat object: %w", err)
	}

	data, err := io.ReadAll(o)
	if err != nil {
		return blob.Object{}, fmt.Errorf("read object: %w", err)
	}
	return blob.Object{Data: data, ContentType: info.ContentType}, nil
}

func isNoSuchKey(err error) bool {
	var resp miniogo.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
