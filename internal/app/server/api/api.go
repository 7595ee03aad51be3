// Платформа закладок:
//   - табличный API закладок (выборка, вставка, удаление по фильтру);
//   - регистрация, вход и выход пользователей;
//   - хранилище файлов с публичными ссылками.
//
//POST   /auth/v1/signup                                   # Регистрация (публичный)
//POST   /auth/v1/token                                    # Вход (публичный)
//POST   /auth/v1/logout                                   # Выход (auth)
//GET    /auth/v1/user                                     # Текущий пользователь (auth)
//GET    /rest/v1/bookmarks?field=&value=&order=           # Выборка (auth)
//POST   /rest/v1/bookmarks                                # Вставка (auth)
//DELETE /rest/v1/bookmarks?field=&value=                  # Удаление (auth)
//POST   /storage/v1/object/{bucket}/{owner}/{name}        # Загрузка файла (auth)
//GET    /storage/v1/object/public/{bucket}/{owner}/{name} # Публичная ссылка

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	blobAPI "bookmarkhub/internal/app/server/api/http/blob"
	healthAPI "bookmarkhub/internal/app/server/api/http/health"
	itemAPI "bookmarkhub/internal/app/server/api/http/item"
	"bookmarkhub/internal/app/server/api/http/middleware"
	"bookmarkhub/internal/app/server/api/http/middleware/auth"
	"bookmarkhub/internal/app/server/api/http/middleware/logger"
	userAPI "bookmarkhub/internal/app/server/api/http/user"
	"bookmarkhub/internal/domain/blob"
	"bookmarkhub/internal/domain/item"
	"bookmarkhub/internal/domain/session"
	"bookmarkhub/internal/domain/user"
)

// Services - доменные сервисы, которые обслуживает API.
type Services struct {
	DB       healthAPI.Pinger
	Users    user.Servicer
	Sessions session.Servicer
	Items    item.Servicer
	Blobs    blob.Servicer
}

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Item   *itemAPI.Handler
	Blob   *blobAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Bookmarkhub API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(svc, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Item.SetupRoutes(API)
	h.Blob.SetupRoutes(API)

	return mux
}

func handlers(svc Services, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(svc.DB, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	authed := middlewares.GetAllAndClear()
	userHandler := userAPI.NewHandler(svc.Users, svc.Sessions, log, public, authed)

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	itemHandler := itemAPI.NewHandler(svc.Items, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	blobPublic := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	blobHandler := blobAPI.NewHandler(svc.Blobs, log, blobPublic, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Item:   itemHandler,
		Blob:   blobHandler,
	}
}
