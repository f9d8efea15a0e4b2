package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates the identity, profile and credential rows as one atomic
// unit. A unique violation on the profile email rolls the whole unit back
// and surfaces as ConflictError; any other failure surfaces as
// InternalError. Classification happens here, not in the controller.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, profile *domain.Profile, credentials *domain.Credentials) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create identity
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		// Create profile
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		// Create credentials
		credentials.UserID = user.ID
		if err := tx.Create(credentials).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Message: "email already registered"}
		}
		return &domain.InternalError{Message: "failed to create user", Err: err}
	}

	return nil
}

// GetByEmail retrieves a user with profile and credentials by email.
// A missing email is a classified NotFoundError, not a system failure.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("user_profiles.email = ?", email).
		Preload("Profile").
		Preload("Credentials").
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Message: "user not found"}
		}
		return nil, &domain.InternalError{Message: "failed to get user", Err: err}
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Credentials").
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Message: "user not found"}
		}
		return nil, &domain.InternalError{Message: "failed to get user", Err: err}
	}

	return &user, nil
}

// ExistsEmail checks if an email is already registered
func (r *UserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, &domain.InternalError{Message: "failed to check email", Err: err}
	}

	return count > 0, nil
}
