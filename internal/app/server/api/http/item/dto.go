package item

import (
	"time"

	"bookmarkhub/internal/domain/item"
)

type listInput struct {
	Field string `query:"field" enum:"id,owner_id,kind" doc:"Поле фильтра (равенство)"`
	Value string `query:"value" doc:"Значение фильтра"`
	Order string `query:"order" default:"created_at.desc" doc:"Сортировка: <поле>.<asc|desc>"`
}

type listOutput struct {
	Body []item.Item
}

type CreateRequest struct {
	OwnerID   string    `json:"owner_id,omitempty" doc:"Владелец; по умолчанию текущий пользователь"`
	Kind      item.Kind `json:"kind"`
	Title     string    `json:"title" minLength:"1"`
	Content   string    `json:"content" minLength:"1"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type createInput struct {
	Body CreateRequest
}

type CreateResponse struct {
	ID string `json:"id"`
}

type createOutput struct {
	Body CreateResponse
}

type deleteInput struct {
	Field string `query:"field" required:"true" enum:"id,owner_id,kind"`
	Value string `query:"value" required:"true"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type deleteOutput struct {
	Body DeleteResponse
}
