package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/client/binding"
	"bookmarkhub/internal/app/client/collection"
	"bookmarkhub/internal/app/client/config"
	"bookmarkhub/internal/app/client/remote"
	"bookmarkhub/internal/domain/item"
)

const (
	MsgSignedUp  = "Account created, you are now signed in"
	MsgSignedIn  = "Signed in"
	MsgSignedOut = "Signed out"
)

// App собирает клиент платформы, коллекцию закладок и привязку к сессии.
type App struct {
	config     *config.Config
	log        *slog.Logger
	notify     collection.Notifier
	remote     remote.Remote
	tokens     remote.TokenStore
	collection *collection.Controller
	binding    *binding.Binding
	closers    []func() error
}

func New(cfg *config.Config, log *slog.Logger, notify collection.Notifier) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	app := &App{
		config: cfg,
		log:    log,
		notify: notify,
	}

	// Сессия переживает перезапуск клиента только в SQLite
	sqliteTokens, err := remote.NewSQLiteTokenStore(cfg.SessionDBPath)
	if err != nil {
		log.Warn("Не удалось открыть хранилище сессии, используем память", "path", cfg.SessionDBPath, "error", err)
		app.tokens = remote.NewMemoryTokenStore()
	} else {
		app.tokens = sqliteTokens
		app.closers = append(app.closers, sqliteTokens.Close)
	}

	app.remote = remote.NewHTTPRemote(cfg.BaseURL(), cfg.RequestTimeout, app.tokens, log)
	app.collection = collection.NewController(app.remote, notify, log)
	app.binding = binding.New(app.remote, app.collection, log)

	return app, nil
}

// Start определяет начальную сессию и ждёт окончания этого шага.
func (a *App) Start(ctx context.Context) error {
	if err := a.binding.Start(ctx); err != nil {
		return err
	}
	return a.binding.Wait(ctx)
}

func (a *App) Close() error {
	a.binding.Stop()

	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

func (a *App) State() binding.State {
	return a.binding.State()
}

func (a *App) Session() *remote.Session {
	return a.binding.Session()
}

func (a *App) SignUp(ctx context.Context, email, password string) error {
	if _, err := a.remote.SignUp(ctx, email, password); err != nil {
		a.notify.Error(err.Error())
		return err
	}
	a.notify.Success(MsgSignedUp)
	return nil
}

func (a *App) SignIn(ctx context.Context, email, password string) error {
	if _, err := a.remote.SignIn(ctx, email, password); err != nil {
		a.notify.Error(err.Error())
		return err
	}
	a.notify.Success(MsgSignedIn)
	return nil
}

// SignOut сначала очищает коллекцию локально, затем завершает сессию.
func (a *App) SignOut(ctx context.Context) error {
	a.collection.Clear()
	if err := a.remote.SignOut(ctx); err != nil {
		a.log.Warn("sign out cleanup failed", "error", err)
	}
	a.notify.Success(MsgSignedOut)
	return nil
}

func (a *App) Bookmarks() []item.Item {
	return a.collection.Items()
}

// Refresh перечитывает коллекцию текущего владельца.
func (a *App) Refresh(ctx context.Context) error {
	owner, err := a.owner()
	if err != nil {
		return err
	}
	return a.collection.Load(ctx, owner)
}

func (a *App) AddBookmark(ctx context.Context, draft item.Draft) error {
	owner, err := a.owner()
	if err != nil {
		return err
	}
	return a.collection.Create(ctx, owner, draft)
}

func (a *App) DeleteBookmark(ctx context.Context, id string) error {
	if _, err := a.owner(); err != nil {
		return err
	}
	return a.collection.Delete(ctx, id)
}

func (a *App) owner() (string, error) {
	owner, ok := a.binding.OwnerID()
	if !ok {
		return "", fmt.Errorf("%w: используйте `bookmarkhub auth signin`", remote.ErrNotAuthenticated)
	}
	return owner, nil
}
