// Package handlers はginハンドラーを提供します。
// ハンドラーはリクエストの束縛とエラーのHTTP変換のみを行い、
// ビジネスロジックはサービス層に委譲します。
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// currentUserID は認証ミドルウェアがコンテキストに設定したユーザーIDを取得します。
// ハンドラーはトークンを再解析せず、この値だけを認可キーとして使います。
func currentUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID not found in context"})
		return 0, false
	}
	userID, ok := userIDVal.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid user ID type in context"})
		return 0, false
	}
	return userID, true
}

// HealthHandler はヘルスチェックエンドポイントです。
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
