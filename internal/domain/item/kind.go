package item

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Kind string

const (
	KindLink  Kind = "link"
	KindText  Kind = "text"
	KindPhoto Kind = "photo"
)

func (Kind) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(KindLink),
			string(KindText),
			string(KindPhoto),
		},
		Description: "Тип закладки",
		Examples:    []any{KindLink},
	}
}

// Validate реализует validation.Validatable.
func (k Kind) Validate() error {
	switch k {
	case KindLink, KindText, KindPhoto:
		return nil
	}
	return fmt.Errorf("неверный тип закладки: %q", string(k))
}

// String возвращает строковое представление типа.
func (k Kind) String() string {
	return string(k)
}

// DisplayName возвращает человекочитаемое название типа.
func (k Kind) DisplayName() string {
	switch k {
	case KindLink:
		return "Link"
	case KindText:
		return "Text"
	case KindPhoto:
		return "Photo"
	default:
		return "Unknown"
	}
}
