// Package collection хранит локальную копию закладок текущего владельца и
// синхронизирует её с платформой.
package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/client/remote"
	"bookmarkhub/internal/domain/item"
)

const (
	MsgFetchFailed  = "Failed to fetch bookmarks"
	MsgAdded        = "Bookmark added successfully"
	MsgAddFailed    = "Failed to add bookmark"
	MsgDeleted      = "Bookmark deleted successfully"
	MsgDeleteFailed = "Failed to delete bookmark"
	MsgUploadFailed = "Failed to upload photo"
)

// Notifier - канал пользовательских уведомлений.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Remote - часть клиента платформы, которая нужна коллекции.
type Remote interface {
	remote.Store
	remote.Blobs
}

type Controller struct {
	remote Remote
	notify Notifier
	log    *slog.Logger

	now        func() time.Time
	objectName func() string

	mu    sync.Mutex
	items []item.Item
	seq   uint64
	// epoch растёт только при Clear: по нему Create понимает, что сессия сменилась.
	epoch uint64
}

func NewController(r Remote, n Notifier, log *slog.Logger) *Controller {
	return &Controller{
		remote:     r,
		notify:     n,
		log:        log.With("component", "collection"),
		now:        time.Now,
		objectName: uuid.NewString,
	}
}

// Items возвращает копию коллекции в текущем порядке.
func (c *Controller) Items() []item.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]item.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Load заменяет коллекцию закладками владельца, новые сверху. Результат
// устаревшего запроса (после него был выдан новый Load или Clear) отбрасывается.
func (c *Controller) Load(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		err := &item.ValidationError{Field: "owner_id", Reason: "cannot be blank"}
		c.notify.Error(MsgFetchFailed)
		return err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	items, err := c.remote.Query(ctx, remote.TableBookmarks, item.Eq(item.FieldOwnerID, ownerID), item.NewestFirst)

	c.mu.Lock()
	current := seq == c.seq
	if err == nil && current {
		c.items = items
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Debug("load failed", "owner_id", ownerID, "error", err)
		if current {
			c.notify.Error(MsgFetchFailed)
		}
		return fmt.Errorf("load bookmarks: %w", err)
	}
	if !current {
		c.log.Debug("stale load discarded", "owner_id", ownerID, "seq", seq)
	}
	return nil
}

// Clear сбрасывает коллекцию локально и отменяет результаты незавершённых загрузок.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.epoch++
	c.items = nil
}

// Create проверяет черновик, при необходимости загружает фото, вставляет запись
// и перечитывает коллекцию.
func (c *Controller) Create(ctx context.Context, ownerID string, draft item.Draft) error {
	if err := draft.Validate(); err != nil {
		c.notify.Error(err.Error())
		return err
	}
	if ownerID == "" {
		err := &item.ValidationError{Field: "owner_id", Reason: "cannot be blank"}
		c.notify.Error(err.Error())
		return err
	}

	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	content := draft.Content
	if upload, ok := content.(item.PhotoUpload); ok {
		resolved, err := c.uploadPhoto(ctx, ownerID, upload)
		if err != nil {
			c.log.Debug("photo upload failed", "owner_id", ownerID, "error", err)
			c.notify.Error(MsgUploadFailed)
			return err
		}
		content = resolved
	}

	_, err := c.remote.Insert(ctx, remote.TableBookmarks, item.Item{
		OwnerID:   ownerID,
		Kind:      draft.Kind,
		Title:     draft.Title,
		Content:   content.String(),
		Tags:      item.NewTags(draft.Tags...),
		CreatedAt: c.now(),
	})
	if err != nil {
		c.log.Debug("insert failed", "owner_id", ownerID, "error", err)
		c.notify.Error(MsgAddFailed)
		return fmt.Errorf("insert bookmark: %w", err)
	}

	c.notify.Success(MsgAdded)

	c.mu.Lock()
	cleared := epoch != c.epoch
	c.mu.Unlock()
	if cleared {
		c.log.Debug("collection cleared during insert, reload skipped", "owner_id", ownerID)
		return nil
	}

	if err := c.Load(ctx, ownerID); err != nil {
		c.log.Warn("reload after insert failed", "owner_id", ownerID, "error", err)
	}
	return nil
}

func (c *Controller) uploadPhoto(ctx context.Context, ownerID string, upload item.PhotoUpload) (item.PhotoURL, error) {
	name := c.objectName()
	if ext := upload.Ext(); ext != "" {
		name += "." + ext
	}
	path := ownerID + "/" + name

	if err := c.remote.UploadBlob(ctx, remote.BucketBookmarks, path, upload.Data); err != nil {
		return item.PhotoURL{}, fmt.Errorf("upload photo: %w", err)
	}

	url := c.remote.PublicURL(remote.BucketBookmarks, path)
	if url == "" {
		return item.PhotoURL{}, errors.New("upload photo: empty public url")
	}
	return item.PhotoURL{URL: url}, nil
}

// Delete удаляет закладку на платформе и затем из локальной коллекции.
// Наличие id в коллекции не проверяется: неизвестный id удаляется как no-op.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if id == "" {
		err := &item.ValidationError{Field: "id", Reason: "cannot be blank"}
		c.notify.Error(err.Error())
		return err
	}

	if _, err := c.remote.Delete(ctx, remote.TableBookmarks, item.Eq(item.FieldID, id)); err != nil {
		c.log.Debug("delete failed", "item_id", id, "error", err)
		c.notify.Error(MsgDeleteFailed)
		return fmt.Errorf("delete bookmark: %w", err)
	}

	c.mu.Lock()
	kept := make([]item.Item, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.mu.Unlock()

	c.notify.Success(MsgDeleted)
	return nil
}
