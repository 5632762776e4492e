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

// MemoHandler はメモ関連のハンドラーを管理します。
// メモに完了切替はありません。
type MemoHandler struct {
	memoService *services.MemoService
}

// NewMemoHandler は新しいMemoHandlerを作成します。
func NewMemoHandler(memoService *services.MemoService) *MemoHandler {
	return &MemoHandler{memoService: memoService}
}

// GetMemosHandler は認証されたユーザーのメモ一覧を取得します。
func (h *MemoHandler) GetMemosHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	memos, err := h.memoService.List(userID)
	if err != nil {
		logrus.Errorf("Failed to fetch memos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch memos"})
		return
	}
	c.JSON(http.StatusOK, memos)
}

// GetMemoByIDHandler は指定IDのメモを取得します。
func (h *MemoHandler) GetMemoByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	memo, err := h.memoService.Get(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Memo not found"})
			return
		}
		logrus.Errorf("Failed to fetch memo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch memo"})
		return
	}
	c.JSON(http.StatusOK, memo)
}

// CreateMemoHandler は新しいメモを作成します。
func (h *MemoHandler) CreateMemoHandler(c *gin.Context) {
	var req models.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	createdMemo, err := h.memoService.Create(userID, req.Model())
	if err != nil {
		logrus.Errorf("Failed to create memo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create memo"})
		return
	}
	c.JSON(http.StatusCreated, createdMemo)
}

// UpdateMemoHandler は指定IDのメモを更新します。
func (h *MemoHandler) UpdateMemoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedMemo, err := h.memoService.Update(id, userID, req.Model())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Memo not found"})
			return
		}
		logrus.Errorf("Failed to update memo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update memo"})
		return
	}
	c.JSON(http.StatusOK, updatedMemo)
}

// DeleteMemoHandler は指定IDのメモを削除します。
func (h *MemoHandler) DeleteMemoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.memoService.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Memo not found"})
			return
		}
		logrus.Errorf("Failed to delete memo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete memo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted"})
}
