package item

import (
	"path/filepath"
	"strings"
)

// Content - полезная нагрузка закладки. Конкретный вариант зависит от типа:
// LinkContent для link, TextContent для text, PhotoURL или PhotoUpload для photo.
type Content interface {
	Kind() Kind
	Empty() bool
	// String возвращает значение, которое попадает в колонку content.
	String() string
}

type LinkContent struct {
	URL string
}

func (LinkContent) Kind() Kind       { return KindLink }
func (c LinkContent) Empty() bool    { return c.URL == "" }
func (c LinkContent) String() string { return c.URL }

type TextContent struct {
	Body string
}

func (TextContent) Kind() Kind       { return KindText }
func (c TextContent) Empty() bool    { return c.Body == "" }
func (c TextContent) String() string { return c.Body }

// PhotoURL - уже опубликованное изображение.
type PhotoURL struct {
	URL string
}

func (PhotoURL) Kind() Kind       { return KindPhoto }
func (c PhotoURL) Empty() bool    { return c.URL == "" }
func (c PhotoURL) String() string { return c.URL }

// PhotoUpload - файл изображения, который ещё нужно загрузить в хранилище.
// Перед вставкой записи заменяется на PhotoURL.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

func (PhotoUpload) Kind() Kind    { return KindPhoto }
func (c PhotoUpload) Empty() bool { return len(c.Data) == 0 }

// String никогда не должен попасть в таблицу: содержимое файла подменяется URL.
func (c PhotoUpload) String() string { return c.Filename }

// Ext возвращает расширение исходного файла без точки.
func (c PhotoUpload) Ext() string {
	return strings.TrimPrefix(filepath.Ext(c.Filename), ".")
}

// ContentFor оборачивает строковое значение в вариант, соответствующий типу.
func ContentFor(kind Kind, raw string) Content {
	switch kind {
	case KindText:
		return TextContent{Body: raw}
	case KindPhoto:
		return PhotoURL{URL: raw}
	default:
		return LinkContent{URL: raw}
	}
}
