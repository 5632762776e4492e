package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lifelog-api/internal/services"
)

// UploadHandler は画像アップロード関連のハンドラーを管理します。
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler は新しいUploadHandlerを作成します。
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadHandler はmultipartフォームの "file" フィールドを保存し、
// リクエストのスキーム・ホストから組み立てた絶対URLを返します。
func (h *UploadHandler) UploadHandler(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file provided"})
		return
	}

	fileName, err := h.uploadService.Save(header)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file provided"})
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"message": "File must be 5MB or smaller"})
		case errors.Is(err, services.ErrFileType):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only jpg, jpeg, png, gif and webp files are allowed"})
		default:
			logrus.Errorf("Failed to save uploaded file: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		}
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, fileName)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteHandler はクエリパラメータ fileName で指定されたファイルを削除します。
func (h *UploadHandler) DeleteHandler(c *gin.Context) {
	fileName := c.Query("fileName")

	if err := h.uploadService.Delete(fileName); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileName):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file name"})
		case errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		default:
			logrus.Errorf("Failed to delete uploaded file: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete file"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
