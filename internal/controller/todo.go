package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/middleware"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/service"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/utils"
)

// TodoController handles todo endpoints. Every handler reads the user id
// from the claims the authorization middleware attached.
type TodoController struct {
	todoService service.ITodoService
	validator   *utils.Validator
}

// NewTodoController creates a new todo controller
func NewTodoController(todoService service.ITodoService, validator *utils.Validator) *TodoController {
	return &TodoController{
		todoService: todoService,
		validator:   validator,
	}
}

// todoRequest is the create/update JSON payload
type todoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    *int32     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
}

// todoResponse is a todo serialized for the client
type todoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    *int32     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// List handles GET /api/todo
func (tc *TodoController) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	items, err := tc.todoService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	resp := make([]todoResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toTodoResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/todo
func (tc *TodoController) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&domain.ValidationError{Message: "malformed request body"})
		return
	}
	if err := tc.validator.Validate(utils.TodoPayload{Title: req.Title}); err != nil {
		c.Error(&domain.ValidationError{Message: "title is required", Field: "title"})
		return
	}

	item, err := tc.todoService.Create(c.Request.Context(), claims.UserID, service.CreateTodoRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toTodoResponse(*item))
}

// Update handles POST /api/todo/:id
func (tc *TodoController) Update(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&domain.ValidationError{Message: "malformed request body"})
		return
	}
	if err := tc.validator.Validate(utils.TodoPayload{Title: req.Title}); err != nil {
		c.Error(&domain.ValidationError{Message: "title is required", Field: "title"})
		return
	}

	err = tc.todoService.Update(c.Request.Context(), claims.UserID, service.UpdateTodoRequest{
		ID:          todoID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/todo/:id
func (tc *TodoController) Delete(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := tc.todoService.Delete(c.Request.Context(), claims.UserID, todoID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Complete handles POST /api/todo/change-status/:id
func (tc *TodoController) Complete(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.Error(&domain.UnauthorizedError{Message: "missing claims"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := tc.todoService.Complete(c.Request.Context(), claims.UserID, todoID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Message: "invalid id", Field: "id"}
	}
	return id, nil
}

func toTodoResponse(item service.TodoItem) todoResponse {
	return todoResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		IsCompleted: item.IsCompleted,
		Priority:    item.Priority,
		Deadline:    item.Deadline,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
