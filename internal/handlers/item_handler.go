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

// ItemHandler はアイテム関連のハンドラーを管理します。
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler は新しいItemHandlerを作成します。
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// GetItemsHandler は認証されたユーザーのアイテム一覧を取得します。
// クエリパラメータ category で絞り込めます。
func (h *ItemHandler) GetItemsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListByCategory(userID, c.Query("category"))
	if err != nil {
		logrus.Errorf("Failed to fetch items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByIDHandler は指定IDのアイテムを取得します。
func (h *ItemHandler) GetItemByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := h.itemService.Get(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		logrus.Errorf("Failed to fetch item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItemHandler は新しいアイテムを作成します。
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	createdItem, err := h.itemService.Create(userID, req.Model())
	if err != nil {
		logrus.Errorf("Failed to create item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, createdItem)
}

// UpdateItemHandler は指定IDのアイテムを更新します。
func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedItem, err := h.itemService.Update(id, userID, req.Model())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		logrus.Errorf("Failed to update item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, updatedItem)
}

// DeleteItemHandler は指定IDのアイテムを削除します。
func (h *ItemHandler) DeleteItemHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		logrus.Errorf("Failed to delete item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// ToggleItemHandler は指定IDのアイテムの完了状態を反転します。
func (h *ItemHandler) ToggleItemHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	toggledItem, err := h.itemService.Toggle(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		logrus.Errorf("Failed to toggle item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to toggle item"})
		return
	}
	c.JSON(http.StatusOK, toggledItem)
}
