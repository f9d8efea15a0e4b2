package service

import (
	"context"
	"time"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/repository"
)

// TodoService handles todo business logic. All operations take the
// authenticated user's id from the request claims; the repository scopes
// every query to it.
type TodoService struct {
	todoRepo repository.ITodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repository.ITodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// TodoItem represents a todo returned to the caller
type TodoItem struct {
	ID          int64
	Title       string
	Description *string
	IsCompleted bool
	Priority    *int32
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoRequest represents todo creation input
type CreateTodoRequest struct {
	Title       string
	Description *string
	Priority    *int32
	Deadline    *time.Time
}

// UpdateTodoRequest represents todo update input
type UpdateTodoRequest struct {
	ID          int64
	Title       string
	Description *string
	IsCompleted bool
	Priority    *int32
	Deadline    *time.Time
}

// List returns all todos owned by the user
func (s *TodoService) List(ctx context.Context, userID int64) ([]TodoItem, error) {
	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]TodoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, toTodoItem(t))
	}

	return items, nil
}

// Create creates a todo for the user
func (s *TodoService) Create(ctx context.Context, userID int64, req CreateTodoRequest) (*TodoItem, error) {
	todo := &domain.Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	item := toTodoItem(*todo)
	return &item, nil
}

// Update updates a todo owned by the user
func (s *TodoService) Update(ctx context.Context, userID int64, req UpdateTodoRequest) error {
	todo := &domain.Todo{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	}

	return s.todoRepo.Update(ctx, userID, todo)
}

// Delete soft-deletes a todo owned by the user
func (s *TodoService) Delete(ctx context.Context, userID int64, todoID int64) error {
	return s.todoRepo.Delete(ctx, userID, todoID)
}

// Complete marks a todo owned by the user as completed
func (s *TodoService) Complete(ctx context.Context, userID int64, todoID int64) error {
	return s.todoRepo.Complete(ctx, userID, todoID)
}

func toTodoItem(t domain.Todo) TodoItem {
	return TodoItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Priority:    t.Priority,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
