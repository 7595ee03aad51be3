package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/infrastructure/storage/memory"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	store := memory.New()
	svc := NewServices(Repositories{
		DB:       store,
		Items:    store.Items(),
		Users:    store.Users(),
		Sessions: store.Sessions(),
		Blobs:    store.Blobs(),
	}, time.Hour, []string{"bookmarks"}, slog.Default())

	srv := httptest.NewServer(New(svc, slog.Default()))
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv}
}

func (s *testServer) do(method, path, token string, body any, out any) int {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	require.NoError(s.t, err)
	if _, raw := body.([]byte); raw {
		req.Header.Set("Content-Type", "application/octet-stream")
	} else if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type sessionBody struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func TestAPI_BookmarkLifecycle(t *testing.T) {
	s := newTestServer(t)

	var sess sessionBody
	status := s.do(http.MethodPost, "/auth/v1/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	}, &sess)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, sess.AccessToken)
	token, owner := sess.AccessToken, sess.User.ID

	status = s.do(http.MethodPost, "/auth/v1/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	var created struct {
		ID string `json:"id"`
	}
	status = s.do(http.MethodPost, "/rest/v1/bookmarks", token, map[string]any{
		"kind": "link", "title": "Go", "content": "https://go.dev", "tags": []string{"lang", "lang"},
		"created_at": "2026-01-01T00:00:00Z",
	}, &created)
	require.Equal(t, http.StatusCreated, status)

	status = s.do(http.MethodPost, "/rest/v1/bookmarks", token, map[string]any{
		"kind": "text", "title": "Note", "content": "hi", "created_at": "2026-01-02T00:00:00Z",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var items []struct {
		ID    string   `json:"id"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	status = s.do(http.MethodGet, "/rest/v1/bookmarks?field=owner_id&value="+owner+"&order=created_at.desc", token, nil, &items)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 2)
	assert.Equal(t, "Note", items[0].Title)
	assert.Equal(t, []string{"lang"}, items[1].Tags)

	var deleted struct {
		Deleted int64 `json:"deleted"`
	}
	status = s.do(http.MethodDelete, "/rest/v1/bookmarks?field=id&value="+created.ID, token, nil, &deleted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), deleted.Deleted)

	status = s.do(http.MethodDelete, "/rest/v1/bookmarks?field=id&value="+created.ID, token, nil, &deleted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), deleted.Deleted)

	status = s.do(http.MethodGet, "/rest/v1/bookmarks", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = s.do(http.MethodPost, "/auth/v1/logout", token, nil, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status = s.do(http.MethodGet, "/auth/v1/user", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_OwnerIsolation(t *testing.T) {
	s := newTestServer(t)

	var alice, bob sessionBody
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/auth/v1/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	}, &alice))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/auth/v1/signup", "", map[string]string{
		"email": "bob@example.com", "password": "secret2",
	}, &bob))

	var created struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/rest/v1/bookmarks", alice.AccessToken, map[string]any{
		"kind": "link", "title": "Go", "content": "https://go.dev",
	}, &created))

	var items []map[string]any
	require.Equal(t, http.StatusOK, s.do(http.MethodGet,
		"/rest/v1/bookmarks?field=owner_id&value="+alice.User.ID, bob.AccessToken, nil, &items))
	assert.Empty(t, items)

	var deleted struct {
		Deleted int64 `json:"deleted"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodDelete,
		"/rest/v1/bookmarks?field=id&value="+created.ID, bob.AccessToken, nil, &deleted))
	assert.Zero(t, deleted.Deleted)

	status := s.do(http.MethodPost, "/rest/v1/bookmarks", bob.AccessToken, map[string]any{
		"owner_id": alice.User.ID, "kind": "link", "title": "x", "content": "y",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAPI_Storage(t *testing.T) {
	s := newTestServer(t)

	var sess sessionBody
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/auth/v1/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	}, &sess))

	png := []byte("\x89PNG\r\n\x1a\n0000")
	var up struct {
		Key string `json:"key"`
	}
	path := "/storage/v1/object/bookmarks/" + sess.User.ID + "/cat.png"
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, path, sess.AccessToken, png, &up))
	assert.Equal(t, "bookmarks/"+sess.User.ID+"/cat.png", up.Key)

	resp, err := http.Get(s.srv.URL + "/storage/v1/object/public/bookmarks/" + sess.User.ID + "/cat.png")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	status := s.do(http.MethodPost, "/storage/v1/object/bookmarks/someone-else/cat.png", sess.AccessToken, png, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAPI_Health(t *testing.T) {
	s := newTestServer(t)
	var body map[string]string
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/health", "", nil, &body))
	assert.Equal(t, "OK", body["status"])
}
