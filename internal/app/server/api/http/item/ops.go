package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-list",
		Method:      http.MethodGet,
		Path:        "/rest/v1/bookmarks",
		Summary:     "Закладки текущего пользователя",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "bookmarks-create",
		Method:        http.MethodPost,
		Path:          "/rest/v1/bookmarks",
		Summary:       "Добавить закладку",
		Tags:          []string{"bookmarks"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-delete",
		Method:      http.MethodDelete,
		Path:        "/rest/v1/bookmarks",
		Summary:     "Удалить закладки по фильтру",
		Description: "Отсутствие совпадений не считается ошибкой.",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
