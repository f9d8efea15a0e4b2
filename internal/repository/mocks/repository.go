package mocks

import (
	"context"
	"time"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// MockUserRepository is a mock implementation of IUserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User, profile *domain.Profile, credentials *domain.Credentials) error
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc     func(ctx context.Context, userID int64) (*domain.User, error)
	ExistsEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User, profile *domain.Profile, credentials *domain.Credentials) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user, profile, credentials)
	}
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsEmailFunc != nil {
		return m.ExistsEmailFunc(ctx, email)
	}
	return false, nil
}

// MockTodoRepository is a mock implementation of ITodoRepository
type MockTodoRepository struct {
	ListByUserFunc   func(ctx context.Context, userID int64) ([]domain.Todo, error)
	CreateFunc       func(ctx context.Context, todo *domain.Todo) error
	UpdateFunc       func(ctx context.Context, userID int64, todo *domain.Todo) error
	DeleteFunc       func(ctx context.Context, userID int64, todoID int64) error
	CompleteFunc     func(ctx context.Context, userID int64, todoID int64) error
	PurgeDeletedFunc func(ctx context.Context, olderThan time.Time) error
}

func (m *MockTodoRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, todo)
	}
	return nil
}

func (m *MockTodoRepository) Update(ctx context.Context, userID int64, todo *domain.Todo) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, todo)
	}
	return nil
}

func (m *MockTodoRepository) Delete(ctx context.Context, userID int64, todoID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, todoID)
	}
	return nil
}

func (m *MockTodoRepository) Complete(ctx context.Context, userID int64, todoID int64) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userID, todoID)
	}
	return nil
}

func (m *MockTodoRepository) PurgeDeleted(ctx context.Context, olderThan time.Time) error {
	if m.PurgeDeletedFunc != nil {
		return m.PurgeDeletedFunc(ctx, olderThan)
	}
	return nil
}
