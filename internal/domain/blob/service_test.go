package blob

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, bucket, key string, obj Object) error {
	args := m.Called(ctx, bucket, key, obj)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, bucket, key string) (Object, error) {
	args := m.Called(ctx, bucket, key)
	return args.Get(0).(Object), args.Error(1)
}

var png = []byte("\x89PNG\r\n\x1a\n0000")

func TestService_Upload(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, []string{"bookmarks"}, slog.Default())

	store.On("Put", mock.Anything, "bookmarks", "u1/abc.png", Object{Data: png, ContentType: "image/png"}).Return(nil)

	ref, err := service.Upload(context.Background(), "u1", "bookmarks", "u1/abc.png", png)
	require.NoError(t, err)
	assert.Equal(t, "bookmarks/u1/abc.png", ref)

	store.AssertExpectations(t)
}

func TestService_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		key     string
		data    []byte
		wantErr error
	}{
		{name: "unknown bucket", bucket: "avatars", key: "u1/a.png", data: png, wantErr: ErrUnknownBucket},
		{name: "foreign owner", bucket: "bookmarks", key: "u2/a.png", data: png, wantErr: ErrForbidden},
		{name: "no owner prefix", bucket: "bookmarks", key: "a.png", data: png, wantErr: ErrForbidden},
		{name: "traversal", bucket: "bookmarks", key: "u1/../u2/a.png", data: png, wantErr: ErrInvalidPath},
		{name: "absolute", bucket: "bookmarks", key: "/u1/a.png", data: png, wantErr: ErrInvalidPath},
		{name: "empty", bucket: "bookmarks", key: "u1/a.png", wantErr: ErrEmpty},
		{name: "too large", bucket: "bookmarks", key: "u1/a.png", data: make([]byte, MaxObjectSize+1), wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			service := NewService(store, []string{"bookmarks"}, slog.Default())

			_, err := service.Upload(context.Background(), "u1", tt.bucket, tt.key, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
			store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Upload_StoreError(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, []string{"bookmarks"}, slog.Default())

	store.On("Put", mock.Anything, "bookmarks", "u1/a.png", mock.Anything).Return(errors.New("minio down"))

	_, err := service.Upload(context.Background(), "u1", "bookmarks", "u1/a.png", png)
	assert.ErrorContains(t, err, "minio down")
}

func TestService_Download(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, []string{"bookmarks"}, slog.Default())

	store.On("Get", mock.Anything, "bookmarks", "u1/a.png").Return(Object{Data: png}, nil)

	obj, err := service.Download(context.Background(), "bookmarks", "u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)

	_, err = service.Download(context.Background(), "avatars", "u1/a.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCleanKey(t *testing.T) {
	valid := []string{"u1/a.png", "u1/sub/b.jpg"}
	for _, k := range valid {
		got, err := CleanKey(k)
		assert.NoError(t, err, k)
		assert.Equal(t, k, got)
	}

	invalid := []string{"", "/u1/a.png", "../a.png", "u1/../../a", "u1//a.png", "u1/./a.png", ".", `u1\a.png`}
	for _, k := range invalid {
		_, err := CleanKey(k)
		assert.ErrorIs(t, err, ErrInvalidPath, k)
	}
}
