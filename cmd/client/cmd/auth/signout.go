package auth

import (
	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
)

var SignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Выйти из учётной записи",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}
		return app.SignOut(cmd.Context())
	},
}
