package bookmark

import (
	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить закладку",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}
		if app.Session() == nil {
			return errNotSignedIn
		}
		return app.DeleteBookmark(cmd.Context(), args[0])
	},
}
