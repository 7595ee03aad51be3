package bookmark

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotSignedIn = errors.New("не выполнен вход. Используйте: bookmarkhub auth signin")

// BookmarkCmd - родительская команда для работы с закладками
var BookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bm"},
	Short:   "Работа с закладками",
	Long:    `Просмотр, добавление и удаление закладок текущего пользователя.`,
}

func init() {
	BookmarkCmd.AddCommand(ListCmd, AddCmd, DeleteCmd)
}
