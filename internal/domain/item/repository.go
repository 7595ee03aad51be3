package item

import (
	"context"
)

// Repository - табличное хранилище закладок. Все методы ограничены владельцем.
type Repository interface {
	List(ctx context.Context, ownerID string, filter Filter, order Order) ([]Item, error)
	Create(ctx context.Context, item *Item) (string, error)
	Delete(ctx context.Context, ownerID string, filter Filter) (int64, error)
}
