package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Paths reachable without a valid bearer token
var ExemptPaths = []string{
	"/api/auth/signup",
	"/api/auth/login",
	"/api/healthcheck",
}

// RegisterRoutes wires the API routes onto the engine
func RegisterRoutes(r *gin.Engine, auth *AuthController, todo *TodoController) {
	api := r.Group("/api")

	api.GET("/healthcheck", Healthcheck)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", auth.Signup)
	authGroup.POST("/login", auth.Login)
	authGroup.GET("/current_user", auth.CurrentUser)

	todoGroup := api.Group("/todo")
	todoGroup.GET("", todo.List)
	todoGroup.POST("", todo.Create)
	todoGroup.POST("/:id", todo.Update)
	todoGroup.DELETE("/:id", todo.Delete)
	todoGroup.POST("/change-status/:id", todo.Complete)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

// Healthcheck handles GET /api/healthcheck
func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
