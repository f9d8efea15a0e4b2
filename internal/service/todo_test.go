package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/repository/mocks"
)

func TestTodoService_List(t *testing.T) {
	desc := "desc"
	svc := NewTodoService(&mocks.MockTodoRepository{
		ListByUserFunc: func(ctx context.Context, userID int64) ([]domain.Todo, error) {
			assert.Equal(t, int64(7), userID)
			return []domain.Todo{
				{ID: 1, UserID: 7, Title: "first", Description: &desc},
				{ID: 2, UserID: 7, Title: "second", IsCompleted: true},
			}, nil
		},
	})

	items, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "desc", *items[0].Description)
	assert.True(t, items[1].IsCompleted)
}

func TestTodoService_Create(t *testing.T) {
	svc := NewTodoService(&mocks.MockTodoRepository{
		CreateFunc: func(ctx context.Context, todo *domain.Todo) error {
			assert.Equal(t, int64(7), todo.UserID)
			todo.ID = 11
			return nil
		},
	})

	item, err := svc.Create(context.Background(), 7, CreateTodoRequest{Title: "new task"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, "new task", item.Title)
}

func TestTodoService_ErrorsPropagate(t *testing.T) {
	svc := NewTodoService(&mocks.MockTodoRepository{
		DeleteFunc: func(ctx context.Context, userID int64, todoID int64) error {
			return &domain.NotFoundError{Message: "todo not found"}
		},
		UpdateFunc: func(ctx context.Context, userID int64, todo *domain.Todo) error {
			return &domain.InternalError{Message: "failed to update todo"}
		},
	})

	err := svc.Delete(context.Background(), 7, 99)
	assert.True(t, domain.IsNotFound(err))

	err = svc.Update(context.Background(), 7, UpdateTodoRequest{ID: 99, Title: "x"})
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))
}
