package item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

const (
	ownerA = "7b0e3c8e-5f3d-4b7a-9a55-2d4c1f0a6b01"
	ownerB = "c1d2e3f4-0000-4000-8000-000000000002"
	itemID = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID string, filter Filter, order Order) ([]Item, error) {
	args := m.Called(ctx, ownerID, filter, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, item *Item) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID string, filter Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestService_Query(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	items := []Item{
		{ID: itemID, OwnerID: ownerA, Kind: KindLink, Title: "Go", Content: "https://go.dev", CreatedAt: time.Now()},
	}
	filter := Eq(FieldOwnerID, ownerA)
	mockRepo.On("List", mock.Anything, ownerA, filter, NewestFirst).Return(items, nil)

	got, err := service.Query(context.Background(), ownerA, filter, NewestFirst)
	assert.NoError(t, err)
	assert.Equal(t, items, got)

	mockRepo.AssertExpectations(t)
}

func TestService_Query_ForeignOwnerIsEmpty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	got, err := service.Query(context.Background(), ownerA, Eq(FieldOwnerID, ownerB), NewestFirst)
	assert.NoError(t, err)
	assert.Empty(t, got)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Query_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		order  Order
	}{
		{name: "unknown field", filter: Eq("title", "x"), order: NewestFirst},
		{name: "malformed id", filter: Eq(FieldID, "not-a-uuid"), order: NewestFirst},
		{name: "unknown kind", filter: Eq(FieldKind, "video"), order: NewestFirst},
		{name: "unknown order", filter: Filter{}, order: Order{Field: "content"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(new(MockRepository))

			_, err := service.Query(context.Background(), ownerA, tt.filter, tt.order)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestService_Query_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", mock.Anything, ownerA, Filter{}, NewestFirst).Return(nil, errors.New("connection refused"))

	_, err := service.Query(context.Background(), ownerA, Filter{}, NewestFirst)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Insert(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := Item{
		ID:        "client-guess",
		Kind:      KindText,
		Title:     "Note",
		Content:   "hello",
		Tags:      Tags{"a", "b", "a"},
		CreatedAt: createdAt,
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *Item) bool {
		return i.ID == "" &&
			i.OwnerID == ownerA &&
			i.Kind == KindText &&
			i.CreatedAt.Equal(createdAt) &&
			assert.ObjectsAreEqual(Tags{"a", "b"}, i.Tags)
	})).Return(itemID, nil)

	id, err := service.Insert(context.Background(), ownerA, rec)
	assert.NoError(t, err)
	assert.Equal(t, itemID, id)

	mockRepo.AssertExpectations(t)
}

func TestService_Insert_StampsMissingCreatedAt(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return now }

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *Item) bool {
		return i.CreatedAt.Equal(now) && i.Tags != nil
	})).Return(itemID, nil)

	_, err := service.Insert(context.Background(), ownerA, Item{Kind: KindLink, Title: "t", Content: "https://x"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Insert_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		rec     Item
		wantErr error
	}{
		{name: "foreign owner", rec: Item{OwnerID: ownerB, Kind: KindLink, Title: "t", Content: "c"}, wantErr: ErrForbidden},
		{name: "bad kind", rec: Item{Kind: "video", Title: "t", Content: "c"}, wantErr: ErrInvalidData},
		{name: "empty title", rec: Item{Kind: KindLink, Content: "c"}, wantErr: ErrInvalidData},
		{name: "empty content", rec: Item{Kind: KindLink, Title: "t"}, wantErr: ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Insert(context.Background(), ownerA, tt.rec)
			assert.ErrorIs(t, err, tt.wantErr)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	filter := Eq(FieldID, itemID)
	mockRepo.On("Delete", mock.Anything, ownerA, filter).Return(int64(1), nil)

	n, err := service.Delete(context.Background(), ownerA, filter)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_UnknownIDIsNoop(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	filter := Eq(FieldID, itemID)
	mockRepo.On("Delete", mock.Anything, ownerA, filter).Return(int64(0), nil)

	n, err := service.Delete(context.Background(), ownerA, filter)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_Delete_RequiresFilter(t *testing.T) {
	service := newTestService(new(MockRepository))

	_, err := service.Delete(context.Background(), ownerA, Filter{})
	assert.ErrorIs(t, err, ErrInvalidData)
}
