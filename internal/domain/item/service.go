package item

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Servicer - табличный API закладок, которым пользуется клиент.
type Servicer interface {
	Query(ctx context.Context, ownerID string, filter Filter, order Order) ([]Item, error)
	Insert(ctx context.Context, ownerID string, rec Item) (string, error)
	Delete(ctx context.Context, ownerID string, filter Filter) (int64, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
		now:  time.Now,
	}
}

// Query возвращает закладки владельца, удовлетворяющие фильтру.
// Фильтр по чужому owner_id даёт пустую выборку, а не ошибку.
func (s *Service) Query(ctx context.Context, ownerID string, filter Filter, order Order) ([]Item, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if filter.Field == FieldOwnerID && filter.Value != ownerID {
		return []Item{}, nil
	}

	items, err := s.repo.List(ctx, ownerID, filter, order)
	if err != nil {
		s.log.Error("failed to query items", "owner_id", ownerID, "filter", filter.Field, "error", err)
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

// Insert сохраняет новую запись. Идентификатор назначает хранилище.
func (s *Service) Insert(ctx context.Context, ownerID string, rec Item) (string, error) {
	if rec.OwnerID == "" {
		rec.OwnerID = ownerID
	}
	if rec.OwnerID != ownerID {
		return "", ErrForbidden
	}
	if err := rec.Kind.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if rec.Title == "" || rec.Content == "" {
		return "", fmt.Errorf("%w: title and content are required", ErrInvalidData)
	}

	rec.ID = ""
	rec.Tags = NewTags(rec.Tags...)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	id, err := s.repo.Create(ctx, &rec)
	if err != nil {
		s.log.Error("failed to insert item", "owner_id", ownerID, "kind", rec.Kind, "error", err)
		return "", fmt.Errorf("insert item: %w", err)
	}

	s.log.Info("item inserted", "item_id", id, "owner_id", ownerID, "kind", rec.Kind)
	return id, nil
}

// Delete удаляет подходящие под фильтр записи владельца. Отсутствие совпадений - не ошибка.
func (s *Service) Delete(ctx context.Context, ownerID string, filter Filter) (int64, error) {
	if filter.IsZero() {
		return 0, fmt.Errorf("%w: delete requires a filter", ErrInvalidData)
	}
	if err := validateFilter(filter); err != nil {
		return 0, err
	}
	if filter.Field == FieldOwnerID && filter.Value != ownerID {
		return 0, nil
	}

	n, err := s.repo.Delete(ctx, ownerID, filter)
	if err != nil {
		s.log.Error("failed to delete items", "owner_id", ownerID, "filter", filter.Field, "error", err)
		return 0, fmt.Errorf("delete items: %w", err)
	}

	s.log.Info("items deleted", "owner_id", ownerID, "filter", filter.Field, "value", filter.Value, "count", n)
	return n, nil
}

func validateFilter(f Filter) error {
	if err := f.Validate(); err != nil {
		return err
	}
	switch f.Field {
	case FieldID, FieldOwnerID:
		if _, err := uuid.Parse(f.Value); err != nil {
			return fmt.Errorf("%w: %s is not a valid uuid", ErrInvalidData, f.Field)
		}
	case FieldKind:
		if err := Kind(f.Value).Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
	}
	return nil
}
