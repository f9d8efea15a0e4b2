package service

import (
	"context"
	"fmt"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/repository"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/utils"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/worker"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo  repository.IUserRepository
	hasher    *utils.PasswordHasher
	tokens    *utils.TokenService
	validator *utils.Validator
	emailPool *worker.EmailWorkerPool
}

// NewAuthService creates a new auth service. The email pool is optional;
// when nil, no welcome email is sent on signup.
func NewAuthService(
	userRepo repository.IUserRepository,
	hasher *utils.PasswordHasher,
	tokens *utils.TokenService,
	validator *utils.Validator,
	emailPool *worker.EmailWorkerPool,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		emailPool: emailPool,
	}
}

// SignupRequest represents signup input
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// AuthResponse represents the profile data and bearer token returned by
// both signup and login
type AuthResponse struct {
	UserID int64
	Name   string
	Email  string
	Token  string
}

// Signup registers a new user: hash the password, create the identity,
// profile and credential rows atomically, then issue a token. A duplicate
// email propagates as ConflictError.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := s.validator.Validate(utils.SignupPayload{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, &domain.ValidationError{Message: "invalid signup payload"}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to process password", Err: err}
	}

	newUser := &domain.User{}
	profile := &domain.Profile{
		Name:  req.Name,
		Email: req.Email,
	}
	credentials := &domain.Credentials{
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, newUser, profile, credentials); err != nil {
		// ConflictError and InternalError are already classified by the repository
		return nil, err
	}

	token, err := s.tokens.Issue(req.Email, newUser.ID)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	if s.emailPool != nil {
		s.emailPool.Enqueue(worker.EmailTask{
			Recipient: req.Email,
			Subject:   "Welcome",
			Body:      fmt.Sprintf("Hi %s, your account has been created.", req.Name),
		})
	}

	return &AuthResponse{
		UserID: newUser.ID,
		Name:   req.Name,
		Email:  req.Email,
		Token:  token,
	}, nil
}

// UserInfo represents the profile of an already-authenticated user
type UserInfo struct {
	UserID int64
	Name   string
	Email  string
}

// CurrentUser resolves the profile behind a validated token's user id.
// The account may have been removed since the token was issued; that
// surfaces as NotFoundError.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Profile == nil {
		return nil, &domain.InternalError{Message: "user record is incomplete"}
	}

	return &UserInfo{
		UserID: user.ID,
		Name:   user.Profile.Name,
		Email:  user.Profile.Email,
	}, nil
}

// LoginRequest represents login input
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates a user with email and password. Unknown email and
// wrong password collapse to the same UnauthorizedError; database or
// hashing failures stay distinguishable as InternalError.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Validate(utils.LoginPayload{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, &domain.ValidationError{Message: "invalid login payload"}
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
		}
		return nil, err
	}

	if user.Credentials == nil || user.Profile == nil {
		return nil, &domain.InternalError{Message: "user record is incomplete"}
	}

	ok, err := s.hasher.Verify(user.Credentials.PasswordHash, req.Password)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to verify password", Err: err}
	}
	if !ok {
		return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
	}

	token, err := s.tokens.Issue(user.Profile.Email, user.ID)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &AuthResponse{
		UserID: user.ID,
		Name:   user.Profile.Name,
		Email:  user.Profile.Email,
		Token:  token,
	}, nil
}
