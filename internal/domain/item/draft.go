package item

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Draft - данные формы создания закладки.
type Draft struct {
	Kind    Kind
	Title   string
	Content Content
	Tags    Tags
}

// Validate проверяет черновик до любых обращений к хранилищу.
func (d Draft) Validate() error {
	if err := validation.Validate(d.Kind, validation.Required); err != nil {
		return &ValidationError{Field: "kind", Reason: err.Error()}
	}
	if err := validation.Validate(d.Title, validation.Required); err != nil {
		return &ValidationError{Field: "title", Reason: err.Error()}
	}
	if d.Content == nil || d.Content.Empty() {
		return &ValidationError{Field: "content", Reason: "cannot be blank"}
	}
	if d.Content.Kind() != d.Kind {
		return &ValidationError{Field: "content", Reason: "does not match kind " + d.Kind.String()}
	}
	return nil
}
