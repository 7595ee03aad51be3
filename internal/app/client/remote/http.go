package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"bookmarkhub/internal/domain/item"
)

const userAgent = "Bookmarkhub-Client/1.0"

// HTTPRemote реализует Remote поверх HTTP API платформы.
type HTTPRemote struct {
	client  *http.Client
	baseURL string
	tokens  TokenStore
	log     *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	session   *Session
	listeners map[int]func(*Session)
	nextID    int
}

func NewHTTPRemote(baseURL string, timeout time.Duration, tokens TokenStore, log *slog.Logger) *HTTPRemote {
	return &HTTPRemote{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokens:    tokens,
		log:       log.With("component", "remote"),
		now:       time.Now,
		listeners: make(map[int]func(*Session)),
	}
}

type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	contentType string
	body        []byte
}

func jsonRequest(method, path, token string, body any) (request, error) {
	req := request{method: method, path: path, token: token}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return request{}, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		req.body = data
		req.contentType = "application/json"
	}
	return req, nil
}

// do выполняет запрос и декодирует JSON-ответ в out. 401 на запрос с токеном
// текущей сессии означает её истечение.
func (h *HTTPRemote) do(ctx context.Context, r request, out any) error {
	target := h.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	h.log.Debug("Отправка запроса", "method", r.method, "url", req.URL.Path)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "path", req.URL.Path)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := parseAPIError(resp.StatusCode, data)
		if apiErr.Unauthorized() && r.token != "" {
			h.expire(r.token)
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}

func (h *HTTPRemote) currentToken() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return "", ErrNotAuthenticated
	}
	return h.session.AccessToken, nil
}

// ==================== Auth ====================

func (h *HTTPRemote) CurrentSession(ctx context.Context) (*Session, error) {
	h.mu.Lock()
	if h.session != nil {
		s := *h.session
		h.mu.Unlock()
		return &s, nil
	}
	h.mu.Unlock()

	stored, err := h.tokens.Load()
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			return nil, nil
		}
		return nil, err
	}
	if stored.Expired(h.now()) {
		h.log.Debug("Сохранённая сессия истекла")
		return nil, h.tokens.Clear()
	}

	var u User
	err = h.do(ctx, request{method: http.MethodGet, path: "/auth/v1/user", token: stored.AccessToken}, &u)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			return nil, h.tokens.Clear()
		}
		return nil, err
	}

	s := &Session{AccessToken: stored.AccessToken, ExpiresAt: stored.ExpiresAt, User: u}
	h.mu.Lock()
	h.session = s
	h.mu.Unlock()

	out := *s
	return &out, nil
}

func (h *HTTPRemote) OnSessionChange(fn func(*Session)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *HTTPRemote) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return h.authenticate(ctx, "/auth/v1/token", email, password)
}

func (h *HTTPRemote) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return h.authenticate(ctx, "/auth/v1/signup", email, password)
}

func (h *HTTPRemote) authenticate(ctx context.Context, path, email, password string) (*Session, error) {
	req, err := jsonRequest(http.MethodPost, path, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var s Session
	if err := h.do(ctx, req, &s); err != nil {
		return nil, err
	}

	if err := h.tokens.Save(StoredToken{AccessToken: s.AccessToken, ExpiresAt: s.ExpiresAt}); err != nil {
		h.log.Warn("Не удалось сохранить сессию", "error", err)
	}

	h.mu.Lock()
	stored := s
	h.session = &stored
	h.mu.Unlock()

	h.notify(&s)
	return &s, nil
}

// SignOut всегда завершает сессию локально; ошибка сервера только логируется.
func (h *HTTPRemote) SignOut(ctx context.Context) error {
	h.mu.Lock()
	s := h.session
	h.session = nil
	h.mu.Unlock()

	if s != nil {
		err := h.do(ctx, request{method: http.MethodPost, path: "/auth/v1/logout", token: s.AccessToken}, nil)
		if err != nil {
			h.log.Warn("Ошибка выхода на сервере", "error", err)
		}
	}

	clearErr := h.tokens.Clear()
	if s != nil {
		h.notify(nil)
	}
	return clearErr
}

// expire сбрасывает сессию, если отвергнутый токен всё ещё текущий.
func (h *HTTPRemote) expire(token string) {
	h.mu.Lock()
	if h.session == nil || h.session.AccessToken != token {
		h.mu.Unlock()
		return
	}
	h.session = nil
	h.mu.Unlock()

	h.log.Info("Сессия истекла")
	if err := h.tokens.Clear(); err != nil {
		h.log.Warn("Не удалось удалить сохранённую сессию", "error", err)
	}
	h.notify(nil)
}

// notify вызывает подписчиков вне мьютекса: они могут обращаться к клиенту.
func (h *HTTPRemote) notify(s *Session) {
	h.mu.Lock()
	fns := make([]func(*Session), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		if s == nil {
			fn(nil)
			continue
		}
		cp := *s
		fn(&cp)
	}
}

// ==================== Store ====================

func (h *HTTPRemote) Query(ctx context.Context, table string, filter item.Filter, order item.Order) ([]item.Item, error) {
	token, err := h.currentToken()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	if !filter.IsZero() {
		q.Set("field", filter.Field)
		q.Set("value", filter.Value)
	}
	q.Set("order", order.String())

	var items []item.Item
	err = h.do(ctx, request{method: http.MethodGet, path: "/rest/v1/" + url.PathEscape(table), query: q, token: token}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (h *HTTPRemote) Insert(ctx context.Context, table string, rec item.Item) (string, error) {
	token, err := h.currentToken()
	if err != nil {
		return "", err
	}

	rec.ID = ""
	rec.Tags = item.NewTags(rec.Tags...)
	req, err := jsonRequest(http.MethodPost, "/rest/v1/"+url.PathEscape(table), token, rec)
	if err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := h.do(ctx, req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (h *HTTPRemote) Delete(ctx context.Context, table string, filter item.Filter) (int64, error) {
	token, err := h.currentToken()
	if err != nil {
		return 0, err
	}

	q := url.Values{}
	q.Set("field", filter.Field)
	q.Set("value", filter.Value)

	var out struct {
		Deleted int64 `json:"deleted"`
	}
	err = h.do(ctx, request{method: http.MethodDelete, path: "/rest/v1/" + url.PathEscape(table), query: q, token: token}, &out)
	if err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

// ==================== Blobs ====================

func (h *HTTPRemote) UploadBlob(ctx context.Context, bucket, path string, data []byte) error {
	token, err := h.currentToken()
	if err != nil {
		return err
	}

	return h.do(ctx, request{
		method:      http.MethodPost,
		path:        "/storage/v1/object/" + url.PathEscape(bucket) + "/" + escapePath(path),
		token:       token,
		contentType: "application/octet-stream",
		body:        data,
	}, nil)
}

func (h *HTTPRemote) PublicURL(bucket, path string) string {
	return h.baseURL + "/storage/v1/object/public/" + url.PathEscape(bucket) + "/" + escapePath(path)
}

func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
