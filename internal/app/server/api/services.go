package api

import (
	"time"

	"golang.org/x/exp/slog"

	healthAPI "bookmarkhub/internal/app/server/api/http/health"
	"bookmarkhub/internal/domain/blob"
	"bookmarkhub/internal/domain/item"
	"bookmarkhub/internal/domain/session"
	"bookmarkhub/internal/domain/user"
)

// Repositories - реализации хранилищ, из которых собираются сервисы.
type Repositories struct {
	DB       healthAPI.Pinger
	Items    item.Repository
	Users    user.Repository
	Sessions session.Repository
	Blobs    blob.Store
}

func NewServices(repos Repositories, sessionTTL time.Duration, buckets []string, log *slog.Logger) Services {
	return Services{
		DB:       repos.DB,
		Users:    user.NewService(repos.Users, user.NewCredentialsValidator(), log),
		Sessions: session.NewService(repos.Sessions, sessionTTL, log),
		Items:    item.NewService(repos.Items, log),
		Blobs:    blob.NewService(repos.Blobs, buckets, log),
	}
}
