package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/domain/item"
)

type ItemRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewItemRepository(pool *pgxpool.Pool, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		log:  log.With("component", "item_repository"),
	}
}

// Колонки фильтра. Значение приводится к типу колонки на стороне БД.
var filterColumns = map[string]string{
	item.FieldID:      "id = $%d::uuid",
	item.FieldOwnerID: "owner_id = $%d::uuid",
	item.FieldKind:    "kind = $%d",
}

var orderColumns = map[string]string{
	item.FieldCreatedAt: "created_at",
	item.FieldTitle:     "title",
}

// whereClause всегда ограничивает выборку владельцем.
func whereClause(ownerID string, filter item.Filter) (string, []any, error) {
	conds := []string{"owner_id = $1::uuid"}
	args := []any{ownerID}

	if !filter.IsZero() {
		tmpl, ok := filterColumns[filter.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: unsupported filter field %q", item.ErrInvalidData, filter.Field)
		}
		args = append(args, filter.Value)
		conds = append(conds, fmt.Sprintf(tmpl, len(args)))
	}
	return "WHERE " + strings.Join(conds, " AND "), args, nil
}

func orderClause(order item.Order) (string, error) {
	col, ok := orderColumns[order.Field]
	if !ok {
		return "", fmt.Errorf("%w: unsupported order field %q", item.ErrInvalidData, order.Field)
	}
	dir := "ASC"
	if order.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", col, dir, dir), nil
}

func (r *ItemRepository) List(ctx context.Context, ownerID string, filter item.Filter, order item.Order) ([]item.Item, error) {
	where, args, err := whereClause(ownerID, filter)
	if err != nil {
		return nil, err
	}
	orderBy, err := orderClause(order)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id::text, owner_id::text, kind, title, content, tags, created_at
		FROM bookmarks ` + where + " " + orderBy

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list items", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (item.Item, error) {
	var (
		it        item.Item
		kind      string
		tags      []string
		createdAt time.Time
	)
	if err := row.Scan(&it.ID, &it.OwnerID, &kind, &it.Title, &it.Content, &tags, &createdAt); err != nil {
		return item.Item{}, err
	}
	it.Kind = item.Kind(kind)
	it.Tags = item.NewTags(tags...)
	it.CreatedAt = createdAt.UTC()
	return it, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (string, error) {
	const query = `
		INSERT INTO bookmarks (owner_id, kind, title, content, tags, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id::text`

	tags := it.Tags.Slice()

	var id string
	err := r.pool.QueryRow(ctx, query,
		it.OwnerID, string(it.Kind), it.Title, it.Content, tags, it.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create item", "owner_id", it.OwnerID, "kind", it.Kind, "error", err)
		return "", fmt.Errorf("create item: %w", err)
	}

	it.ID = id
	return id, nil
}

func (r *ItemRepository) Delete(ctx context.Context, ownerID string, filter item.Filter) (int64, error) {
	where, args, err := whereClause(ownerID, filter)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, "DELETE FROM bookmarks "+where, args...)
	if err != nil {
		r.log.Error("failed to delete items", "owner_id", ownerID, "filter", filter.Field, "error", err)
		return 0, fmt.Errorf("delete items: %w", err)
	}
	return tag.RowsAffected(), nil
}
