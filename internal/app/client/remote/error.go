package remote

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// APIError - ошибка, которую вернула платформа. Error() отдаёт текст сервера как есть.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// problem - тело ошибки в формате application/problem+json.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func parseAPIError(status int, body []byte) *APIError {
	var p problem
	if err := json.Unmarshal(body, &p); err == nil {
		switch {
		case p.Detail != "":
			return &APIError{Status: status, Message: p.Detail}
		case p.Title != "":
			return &APIError{Status: status, Message: p.Title}
		}
	}
	msg := http.StatusText(status)
	if msg == "" {
		msg = "status " + strconv.Itoa(status)
	}
	return &APIError{Status: status, Message: msg}
}
