package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/auth"
	"bookmarkhub/cmd/client/cmd/bookmark"
	"bookmarkhub/cmd/client/cmd/types"
	"bookmarkhub/internal/app/client"
	"bookmarkhub/internal/app/client/config"
	"bookmarkhub/internal/app/client/toast"
	"bookmarkhub/internal/utils/logger"
)

var (
	debug     bool
	serverURL string
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "bookmarkhub",
	Short: "Bookmarkhub - личная коллекция ссылок, заметок и фотографий",
	Long: `Bookmarkhub — консольный клиент платформы закладок.

Закладки хранятся на сервере и привязаны к учётной записи; фотографии
загружаются в файловое хранилище платформы.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log := logger.NewCLI(os.Stderr, debug)

	app, err = client.New(cfg, log, toast.NewConsole(os.Stdout))
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	startCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("ошибка получения сессии: %w", err)
	}

	cmd.SetContext(types.WithApp(ctx, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес платформы (host:port)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(bookmark.BookmarkCmd)
}
