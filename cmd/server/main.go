package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/server/api"
	"bookmarkhub/internal/config"
	"bookmarkhub/internal/domain/blob"
	blobstore "bookmarkhub/internal/infrastructure/blob"
	"bookmarkhub/internal/infrastructure/storage/memory"
	"bookmarkhub/internal/infrastructure/storage/postgres"
	"bookmarkhub/internal/utils/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	repos, closeStorage, err := openStorage(ctx, conf, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	svc := api.NewServices(repos, conf.Auth.SessionTTL, conf.Blob.Buckets, log)
	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, conf *config.Config, log *slog.Logger) (api.Repositories, func(), error) {
	blobs, err := openBlobStore(ctx, conf, log)
	if err != nil {
		return api.Repositories{}, nil, err
	}

	if conf.DB.Driver == config.StorageDriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		store := memory.New()
		return api.Repositories{
			DB:       store,
			Items:    store.Items(),
			Users:    store.Users(),
			Sessions: store.Sessions(),
			Blobs:    blobs,
		}, func() {}, nil
	}

	storage, err := postgres.New(ctx, conf.DB)
	if err != nil {
		return api.Repositories{}, nil, fmt.Errorf("open postgres: %w", err)
	}

	sessions := postgres.NewSessionRepository(storage.Pool(), log)
	purgeCtx, cancelPurge := context.WithCancel(ctx)
	go purgeSessions(purgeCtx, sessions, log)

	repos := api.Repositories{
		DB:       storage,
		Items:    postgres.NewItemRepository(storage.Pool(), log),
		Users:    postgres.NewUserRepository(storage.Pool(), log),
		Sessions: sessions,
		Blobs:    blobs,
	}
	return repos, func() {
		cancelPurge()
		_ = storage.Close()
	}, nil
}

func openBlobStore(ctx context.Context, conf *config.Config, log *slog.Logger) (blob.Store, error) {
	switch conf.Blob.Driver {
	case config.BlobDriverMinIO:
		m := conf.Blob.MinIO
		return blobstore.NewMinIO(ctx, blobstore.MinIOConfig{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			UseSSL:    m.UseSSL,
		}, conf.Blob.Buckets, log)
	default:
		return blobstore.NewFS(conf.Blob.FSRoot, log)
	}
}

func purgeSessions(ctx context.Context, repo *postgres.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := repo.PurgeExpired(ctx); err != nil {
				log.Warn("failed to purge expired sessions", "error", err)
			}
		}
	}
}
