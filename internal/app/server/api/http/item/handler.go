package item

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/server/api/http/middleware/auth"
	"bookmarkhub/internal/domain/item"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	order, err := item.ParseOrder(input.Order)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	items, err := h.service.Query(ctx, userID, item.Eq(input.Field, input.Value), order)
	if err != nil {
		return nil, mapError(err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	req := input.Body
	id, err := h.service.Insert(ctx, userID, item.Item{
		OwnerID:   req.OwnerID,
		Kind:      req.Kind,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      item.NewTags(req.Tags...),
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &createOutput{Body: CreateResponse{ID: id}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Delete(ctx, userID, item.Eq(input.Field, input.Value))
	if err != nil {
		return nil, mapError(err)
	}
	return &deleteOutput{Body: DeleteResponse{Deleted: n}}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrInvalidData):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, item.ErrForbidden):
		return huma.Error403Forbidden(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
