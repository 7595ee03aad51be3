package auth

import (
	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
)

var SignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Войти в учётную запись",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		addr, password, err := terminalPrompter().credentials(email, false)
		if err != nil {
			return err
		}
		return app.SignIn(cmd.Context(), addr, password)
	},
}
