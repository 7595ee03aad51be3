package auth

import (
	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
)

var SignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Зарегистрировать новую учётную запись",
	Long: `Создаёт учётную запись на платформе и сразу открывает сессию.

Сессия сохраняется локально и используется следующими командами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		addr, password, err := terminalPrompter().credentials(email, true)
		if err != nil {
			return err
		}

		return app.SignUp(cmd.Context(), addr, password)
	},
}
