package blob

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/server/api/http/middleware/auth"
	"bookmarkhub/internal/domain/blob"
)

type Handler struct {
	service        blob.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(service blob.Servicer, log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		log:            log,
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.downloadOp(), h.download)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	key, err := h.service.Upload(ctx, userID, input.Bucket, input.Owner+"/"+input.Name, input.RawBody)
	if err != nil {
		return nil, mapError(err)
	}
	return &uploadOutput{Body: UploadResponse{Key: key}}, nil
}

func (h *Handler) download(ctx context.Context, input *downloadInput) (*downloadOutput, error) {
	obj, err := h.service.Download(ctx, input.Bucket, input.Owner+"/"+input.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &downloadOutput{
		ContentType:  obj.ContentType,
		CacheControl: "public, max-age=3600",
		Body:         obj.Data,
	}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, blob.ErrNotFound), errors.Is(err, blob.ErrUnknownBucket):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, blob.ErrForbidden):
		return huma.Error403Forbidden(err.Error())
	case errors.Is(err, blob.ErrInvalidPath), errors.Is(err, blob.ErrEmpty):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, blob.ErrTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return huma.Error500InternalServerError("storage error")
	}
}
