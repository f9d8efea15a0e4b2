package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/middleware"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/service"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/utils"
)

// mockAuthService is a func-field mock of service.IAuthService
type mockAuthService struct {
	SignupFunc      func(ctx context.Context, req service.SignupRequest) (*service.AuthResponse, error)
	LoginFunc       func(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error)
	CurrentUserFunc func(ctx context.Context, userID int64) (*service.UserInfo, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*service.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (*service.UserInfo, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, nil
}

func newAuthRouter(svc service.IAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	ac := NewAuthController(svc, 240*time.Hour, false)
	r.POST("/api/auth/signup", ac.Signup)
	r.POST("/api/auth/login", ac.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthController_Signup(t *testing.T) {
	t.Run("created with token and cookie", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{
			SignupFunc: func(ctx context.Context, req service.SignupRequest) (*service.AuthResponse, error) {
				return &service.AuthResponse{UserID: 7, Name: req.Name, Email: req.Email, Token: "signed.jwt.token"}, nil
			},
		})

		w := postJSON(t, r, "/api/auth/signup", gin.H{
			"name":     "alice",
			"email":    "alice@example.com",
			"password": "SecurePass123",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "alice", resp.Name)
		assert.Equal(t, "signed.jwt.token", resp.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "signed.jwt.token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{
			SignupFunc: func(ctx context.Context, req service.SignupRequest) (*service.AuthResponse, error) {
				return nil, &domain.ConflictError{Message: "email already registered"}
			},
		})

		w := postJSON(t, r, "/api/auth/signup", gin.H{
			"name":     "alice",
			"email":    "alice@example.com",
			"password": "SecurePass123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success returns profile and token", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{
			LoginFunc: func(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
				return &service.AuthResponse{UserID: 7, Name: "alice", Email: req.Email, Token: "signed.jwt.token"}, nil
			},
		})

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "alice@example.com",
			"password": "SecurePass123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed.jwt.token")
	})

	t.Run("failed authentication maps to 401 without detail", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{
			LoginFunc: func(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
				return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
			},
		})

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "alice@example.com",
			"password": "WrongPass456",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "not found")
	})

	t.Run("system error maps to 500", func(t *testing.T) {
		r := newAuthRouter(&mockAuthService{
			LoginFunc: func(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
				return nil, &domain.InternalError{Message: "failed to get user"}
			},
		})

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "alice@example.com",
			"password": "SecurePass123",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthController_CurrentUser(t *testing.T) {
	tokens := utils.NewTokenService("test-secret-key-with-enough-length!", time.Hour)

	newRouter := func(svc service.IAuthService) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.ErrorHandler(), middleware.Authorization(tokens, nil))

		ac := NewAuthController(svc, time.Hour, false)
		r.GET("/api/auth/current_user", ac.CurrentUser)
		return r
	}

	t.Run("returns the profile behind the token", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			CurrentUserFunc: func(ctx context.Context, userID int64) (*service.UserInfo, error) {
				assert.Equal(t, int64(7), userID)
				return &service.UserInfo{UserID: 7, Name: "alice", Email: "alice@example.com"}, nil
			},
		})

		token, err := tokens.Issue("alice@example.com", 7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/current_user", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "alice", resp.Name)
		assert.Equal(t, "alice@example.com", resp.Email)
	})

	t.Run("rejected without a token", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			CurrentUserFunc: func(ctx context.Context, userID int64) (*service.UserInfo, error) {
				t.Fatal("service must not be called without a valid token")
				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/current_user", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("removed account maps to 404", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			CurrentUserFunc: func(ctx context.Context, userID int64) (*service.UserInfo, error) {
				return nil, &domain.NotFoundError{Message: "user not found"}
			},
		})

		token, err := tokens.Issue("ghost@example.com", 99)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/current_user", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
