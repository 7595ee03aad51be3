package blob

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"bookmarkhub/internal/domain/blob"
)

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "storage-upload",
		Method:        http.MethodPost,
		Path:          "/storage/v1/object/{bucket}/{owner}/{name}",
		Summary:       "Загрузить файл",
		Description:   "Путь объекта должен начинаться с идентификатора текущего пользователя.",
		Tags:          []string{"storage"},
		MaxBodyBytes:  blob.MaxObjectSize + 1,
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.authMiddleware,
	}
}

func (h *Handler) downloadOp() huma.Operation {
	return huma.Operation{
		OperationID: "storage-public",
		Method:      http.MethodGet,
		Path:        "/storage/v1/object/public/{bucket}/{owner}/{name}",
		Summary:     "Публичная ссылка на файл",
		Tags:        []string{"storage"},
		Middlewares: h.middleware,
	}
}
