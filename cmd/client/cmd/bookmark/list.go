package bookmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
	"bookmarkhub/internal/domain/item"
)

var (
	listJSON    bool
	listRefresh bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список закладок",
	Long:  `Показывает закладки текущего пользователя, новые сверху.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		// Коллекция уже загружена при восстановлении сессии
		if app.Session() == nil {
			return errNotSignedIn
		}

		if listRefresh {
			if err := app.Refresh(cmd.Context()); err != nil {
				return err
			}
		}

		items := app.Bookmarks()
		if listJSON {
			return printJSON(os.Stdout, items)
		}
		return printTable(os.Stdout, items)
	},
}

func printJSON(w io.Writer, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func printTable(w io.Writer, items []item.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Закладок пока нет")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tТИП\tНАЗВАНИЕ\tСОДЕРЖИМОЕ\tТЕГИ\tСОЗДАНА")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			it.Kind.DisplayName(),
			it.Title,
			truncate(describe(it.Payload()), 48),
			strings.Join(it.Tags, ","),
			it.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return tw.Flush()
}

// describe - однострочное представление содержимого для таблицы.
func describe(c item.Content) string {
	switch v := c.(type) {
	case item.TextContent:
		return strings.Join(strings.Fields(v.Body), " ")
	case item.PhotoURL:
		return "[фото] " + v.URL
	default:
		return c.String()
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
	ListCmd.Flags().BoolVarP(&listRefresh, "refresh", "r", false, "перечитать закладки с сервера перед выводом")
}
