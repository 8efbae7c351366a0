// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todo-api/internal/pkg/response"
)

const msgTodoNotFound = "Todo not found"

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List todos
// @Description Get all todos, newest first
// @Tags todos
// @Produce json
// @Success 200 {array} Todo
// @Failure 500 {object} response.ErrorResponse
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	todos, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, todos)
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} Todo
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	todo, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if todo == nil {
		response.NotFound(c, msgTodoNotFound)
		return
	}

	response.Success(c, todo)
}

// Create godoc
// @Summary Create a new todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTodo(&req); err != nil {
		response.BadRequest(c, "Title is required")
		return
	}

	todo, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, todo)
}

// Update godoc
// @Summary Update a todo
// @Description Apply a partial update; omitted fields keep their value
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to change"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	// An empty body is an empty update: only updatedAt moves
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BindJSONError(c, err)
		return
	}

	todo, err := h.repo.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if todo == nil {
		response.NotFound(c, msgTodoNotFound)
		return
	}

	response.Success(c, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !deleted {
		response.NotFound(c, msgTodoNotFound)
		return
	}

	response.NoContent(c)
}
