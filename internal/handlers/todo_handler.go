package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
	"lifelog-api/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler は認証されたユーザーのTodo一覧を取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		logrus.Errorf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は指定IDのTodoを取得します。
// 他ユーザーのTodoは存在しないものとして404を返します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
			return
		}
		logrus.Errorf("Failed to fetch todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch todo"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	createdTodo, err := h.todoService.Create(userID, req.Model())
	if err != nil {
		logrus.Errorf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler は指定IDのTodoを更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedTodo, err := h.todoService.Update(id, userID, req.Model())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
			return
		}
		logrus.Errorf("Failed to update todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update todo"})
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler は指定IDのTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
			return
		}
		logrus.Errorf("Failed to delete todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

// ToggleTodoHandler は指定IDのTodoの完了状態を反転します。
func (h *TodoHandler) ToggleTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	toggledTodo, err := h.todoService.Toggle(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
			return
		}
		logrus.Errorf("Failed to toggle todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to toggle todo"})
		return
	}
	c.JSON(http.StatusOK, toggledTodo)
}
