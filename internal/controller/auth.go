package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/middleware"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/service"
)

// authCookieName is the cookie carrying the bearer token as an outer
// convenience; the Authorization header remains the sole carrier the
// server checks.
const authCookieName = "access_token"

// AuthController handles authentication endpoints
type AuthController struct {
	authService  service.IAuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

// NewAuthController creates a new auth controller
func NewAuthController(authService service.IAuthService, cookieMaxAge time.Duration, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// signupRequest is the signup JSON payload
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the login JSON payload
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the JSON body returned on successful signup or login
type authResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&domain.ValidationError{Message: "malformed request body"})
		return
	}

	resp, err := ac.authService.Signup(c.Request.Context(), service.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	ac.setAuthCookie(c, resp.Token)
	c.JSON(http.StatusCreated, authResponse{
		ID:    resp.UserID,
		Name:  resp.Name,
		Email: resp.Email,
		Token: resp.Token,
	})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&domain.ValidationError{Message: "malformed request body"})
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	ac.setAuthCookie(c, resp.Token)
	c.JSON(http.StatusOK, authResponse{
		ID:    resp.UserID,
		Name:  resp.Name,
		Email: resp.Email,
		Token: resp.Token,
	})
}

// userResponse is the JSON body returned by the current-user lookup
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CurrentUser handles GET /api/auth/current_user
func (ac *AuthController) CurrentUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	info, err := ac.authService.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:    info.UserID,
		Name:  info.Name,
		Email: info.Email,
	})
}

func (ac *AuthController) setAuthCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   ac.cookieSecure,
		Expires:  time.Now().Add(ac.cookieMaxAge),
	})
}
