package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
)

var WhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущую сессию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		s := app.Session()
		if s == nil {
			fmt.Println("Не выполнен вход. Используйте: bookmarkhub auth signin")
			return nil
		}

		fmt.Printf("Email:   %s\n", s.User.Email)
		fmt.Printf("ID:      %s\n", s.User.ID)
		if s.User.AvatarURL != "" {
			fmt.Printf("Аватар:  %s\n", s.User.AvatarURL)
		}
		if !s.ExpiresAt.IsZero() {
			fmt.Printf("Истекает: %s\n", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
