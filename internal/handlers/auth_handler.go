package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
	"lifelog-api/internal/services"
)

// AuthHandler は登録・ログインのハンドラーを管理します。
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler は新しいAuthHandlerを作成します。
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterHandler はユーザー登録を処理します。
// 重複メールアドレスは400、予期しない失敗は詳細を返さず500になります。
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	res, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		logrus.Errorf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	logrus.Infof("User registered: id=%d", res.User.ID)
	c.JSON(http.StatusOK, res)
}

// LoginHandler はユーザーログインを処理します。
// メールアドレス不明とパスワード不一致は同じ401レスポンスになります。
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	res, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		logrus.Errorf("Failed to log in user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	logrus.Infof("User logged in: id=%d", res.User.ID)
	c.JSON(http.StatusOK, res)
}
