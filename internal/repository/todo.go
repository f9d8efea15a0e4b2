package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// TodoRepository handles todo-related database operations. Every query is
// scoped to the owning user id so one user can never touch another's rows.
type TodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByUser retrieves all todos owned by the user
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error

	if err != nil {
		return nil, &domain.InternalError{Message: "failed to list todos", Err: err}
	}

	return todos, nil
}

// Create inserts a new todo
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return &domain.InternalError{Message: "failed to create todo", Err: err}
	}
	return nil
}

// Update updates the mutable fields of a todo owned by the user
func (r *TodoRepository) Update(ctx context.Context, userID int64, todo *domain.Todo) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ? AND user_id = ?", todo.ID, userID).
		Updates(map[string]interface{}{
			"title":        todo.Title,
			"description":  todo.Description,
			"is_completed": todo.IsCompleted,
			"priority":     todo.Priority,
			"deadline":     todo.Deadline,
		})

	if result.Error != nil {
		return &domain.InternalError{Message: "failed to update todo", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Message: "todo not found"}
	}

	return nil
}

// Delete soft-deletes a todo owned by the user
func (r *TodoRepository) Delete(ctx context.Context, userID int64, todoID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&domain.Todo{})

	if result.Error != nil {
		return &domain.InternalError{Message: "failed to delete todo", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Message: "todo not found"}
	}

	return nil
}

// Complete marks a todo owned by the user as completed
func (r *TodoRepository) Complete(ctx context.Context, userID int64, todoID int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Update("is_completed", true)

	if result.Error != nil {
		return &domain.InternalError{Message: "failed to complete todo", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Message: "todo not found"}
	}

	return nil
}

// PurgeDeleted permanently removes todos soft-deleted before the cutoff.
// Used by the cleanup worker.
func (r *TodoRepository) PurgeDeleted(ctx context.Context, olderThan time.Time) error {
	err := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", olderThan).
		Delete(&domain.Todo{}).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.InternalError{Message: "failed to purge deleted todos", Err: err}
	}

	return nil
}
