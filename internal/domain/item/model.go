package item

import (
	"fmt"
	"strings"
	"time"
)

// Item - закладка пользователя в том виде, в каком она хранится в таблице.
type Item struct {
	ID        string    `json:"id,omitempty"`
	OwnerID   string    `json:"owner_id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      Tags      `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Payload возвращает содержимое закладки в виде варианта, соответствующего типу.
func (i Item) Payload() Content {
	return ContentFor(i.Kind, i.Content)
}

// Поля, по которым допускается фильтрация и сортировка.
const (
	FieldID        = "id"
	FieldOwnerID   = "owner_id"
	FieldKind      = "kind"
	FieldTitle     = "title"
	FieldCreatedAt = "created_at"
)

var (
	filterFields = map[string]bool{FieldID: true, FieldOwnerID: true, FieldKind: true}
	orderFields  = map[string]bool{FieldCreatedAt: true, FieldTitle: true}
)

// Filter - условие равенства field = value. Пустой Field означает "без фильтра".
type Filter struct {
	Field string
	Value string
}

func Eq(field, value string) Filter {
	return Filter{Field: field, Value: value}
}

func (f Filter) IsZero() bool {
	return f.Field == ""
}

func (f Filter) Validate() error {
	if f.IsZero() {
		return nil
	}
	if !filterFields[f.Field] {
		return fmt.Errorf("%w: unsupported filter field %q", ErrInvalidData, f.Field)
	}
	if f.Value == "" {
		return fmt.Errorf("%w: empty value for filter field %q", ErrInvalidData, f.Field)
	}
	return nil
}

// Order - сортировка выборки.
type Order struct {
	Field string
	Desc  bool
}

// NewestFirst - порядок, в котором коллекция всегда отображается.
var NewestFirst = Order{Field: FieldCreatedAt, Desc: true}

func (o Order) Validate() error {
	if !orderFields[o.Field] {
		return fmt.Errorf("%w: unsupported order field %q", ErrInvalidData, o.Field)
	}
	return nil
}

// String кодирует порядок в формате "created_at.desc".
func (o Order) String() string {
	if o.Desc {
		return o.Field + ".desc"
	}
	return o.Field + ".asc"
}

// ParseOrder разбирает строку вида "created_at.desc". Пустая строка даёт NewestFirst.
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return NewestFirst, nil
	}

	field, dir, found := strings.Cut(s, ".")
	o := Order{Field: field}
	if found {
		switch dir {
		case "asc":
		case "desc":
			o.Desc = true
		default:
			return Order{}, fmt.Errorf("%w: unsupported order direction %q", ErrInvalidData, dir)
		}
	}

	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}
