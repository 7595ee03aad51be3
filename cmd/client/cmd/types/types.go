package types

import (
	"context"
	"errors"

	"bookmarkhub/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым приложение кладётся в контекст команды.
const ClientAppKey contextKey = "app"

func WithApp(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, ClientAppKey, app)
}

// App достаёт приложение из контекста команды.
func App(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return app, nil
}
