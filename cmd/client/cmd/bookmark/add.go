package bookmark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bookmarkhub/cmd/client/cmd/types"
	"bookmarkhub/internal/domain/item"
)

var (
	addKind    string
	addTitle   string
	addContent string
	addFile    string
	addTags    []string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить закладку",
	Long: `Добавляет закладку одного из типов: link, text или photo.

Для фотографии можно передать готовый URL через --content или локальный
файл через --file: файл будет загружен в хранилище платформы.`,
	Example: `  bookmarkhub bookmark add --kind link --title Go --content https://go.dev --tag lang
  bookmarkhub bookmark add --kind photo --title Кот --file ./cat.png`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}
		if app.Session() == nil {
			return errNotSignedIn
		}

		draft, err := buildDraft(addKind, addTitle, addContent, addFile, addTags, os.ReadFile)
		if err != nil {
			return err
		}
		return app.AddBookmark(cmd.Context(), draft)
	},
}

// buildDraft собирает черновик из флагов. Пустые поля не отвергаются здесь:
// это делает проверка черновика в коллекции.
func buildDraft(kind, title, content, file string, tags []string, readFile func(string) ([]byte, error)) (item.Draft, error) {
	k := item.Kind(kind)
	if k == "" {
		k = item.KindLink
		if file != "" {
			k = item.KindPhoto
		}
	}
	if err := k.Validate(); err != nil {
		return item.Draft{}, fmt.Errorf("неизвестный тип %q: допустимы link, text, photo", kind)
	}

	draft := item.Draft{Kind: k, Title: title}
	for _, tag := range tags {
		draft.Tags.Add(tag)
	}

	switch {
	case file != "":
		if k != item.KindPhoto {
			return item.Draft{}, fmt.Errorf("--file допустим только для типа photo")
		}
		data, err := readFile(file)
		if err != nil {
			return item.Draft{}, fmt.Errorf("ошибка чтения файла: %w", err)
		}
		draft.Content = item.PhotoUpload{Filename: filepath.Base(file), Data: data}
	default:
		draft.Content = item.ContentFor(k, content)
	}
	return draft, nil
}

func init() {
	AddCmd.Flags().StringVarP(&addKind, "kind", "k", "", "тип закладки: link, text, photo (по умолчанию link)")
	AddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "название")
	AddCmd.Flags().StringVarP(&addContent, "content", "c", "", "URL или текст")
	AddCmd.Flags().StringVarP(&addFile, "file", "f", "", "файл изображения для загрузки")
	AddCmd.Flags().StringArrayVar(&addTags, "tag", nil, "тег (можно повторять)")
}
