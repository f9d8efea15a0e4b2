package repository

import (
	"context"
	"time"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// IUserRepository defines the interface for user repository operations
type IUserRepository interface {
	Create(ctx context.Context, user *domain.User, profile *domain.Profile, credentials *domain.Credentials) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

// ITodoRepository defines the interface for todo repository operations
type ITodoRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) error
	Update(ctx context.Context, userID int64, todo *domain.Todo) error
	Delete(ctx context.Context, userID int64, todoID int64) error
	Complete(ctx context.Context, userID int64, todoID int64) error
	PurgeDeleted(ctx context.Context, olderThan time.Time) error
}

// Compile-time checks to ensure structs implement their interfaces
var (
	_ IUserRepository = (*UserRepository)(nil)
	_ ITodoRepository = (*TodoRepository)(nil)
)
