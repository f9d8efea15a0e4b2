package service

import "context"

// IAuthService defines the interface for auth service operations
type IAuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*UserInfo, error)
}

// ITodoService defines the interface for todo service operations
type ITodoService interface {
	List(ctx context.Context, userID int64) ([]TodoItem, error)
	Create(ctx context.Context, userID int64, req CreateTodoRequest) (*TodoItem, error)
	Update(ctx context.Context, userID int64, req UpdateTodoRequest) error
	Delete(ctx context.Context, userID int64, todoID int64) error
	Complete(ctx context.Context, userID int64, todoID int64) error
}

// Compile-time checks to ensure structs implement their interfaces
var (
	_ IAuthService = (*AuthService)(nil)
	_ ITodoService = (*TodoService)(nil)
)
