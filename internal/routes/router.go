// Package routes はroutingを行います。
package routes

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lifelog-api/internal/config"
	"lifelog-api/internal/handlers"
	"lifelog-api/internal/repositories"
	"lifelog-api/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS対策: 設定されたフロントエンドと開発用オリジンを許可
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL, "http://localhost:5173", "http://localhost:3000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// リポジトリ
	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	memoRepo := repositories.NewMemoRepository(db)

	// サービス
	jwtService := services.NewJWTService(cfg)
	authService := services.NewAuthService(userRepo, jwtService)
	todoService := services.NewTodoService(todoRepo)
	itemService := services.NewItemService(itemRepo)
	memoService := services.NewMemoService(memoRepo)
	uploadService := services.NewUploadService(cfg.UploadDir)

	// ハンドラー
	authHandler := handlers.NewAuthHandler(authService)
	todoHandler := handlers.NewTodoHandler(todoService)
	itemHandler := handlers.NewItemHandler(itemService)
	memoHandler := handlers.NewMemoHandler(memoService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// アップロード済みファイルの静的配信 (認証なしで参照可能)
	r.Static("/uploads", cfg.UploadDir)

	// 認証不要エンドポイント
	r.GET("/health", handlers.HealthHandler)
	r.POST("/api/auth/register", authHandler.RegisterHandler)
	r.POST("/api/auth/login", authHandler.LoginHandler)

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(jwtService))
	{
		authorized.GET("/api/todos", todoHandler.GetTodosHandler)
		authorized.GET("/api/todos/:id", todoHandler.GetTodoByIDHandler)
		authorized.POST("/api/todos", todoHandler.CreateTodoHandler)
		authorized.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
		authorized.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)
		authorized.PATCH("/api/todos/:id/toggle", todoHandler.ToggleTodoHandler)

		authorized.GET("/api/items", itemHandler.GetItemsHandler)
		authorized.GET("/api/items/:id", itemHandler.GetItemByIDHandler)
		authorized.POST("/api/items", itemHandler.CreateItemHandler)
		authorized.PUT("/api/items/:id", itemHandler.UpdateItemHandler)
		authorized.DELETE("/api/items/:id", itemHandler.DeleteItemHandler)
		authorized.PATCH("/api/items/:id/toggle", itemHandler.ToggleItemHandler)

		authorized.GET("/api/memos", memoHandler.GetMemosHandler)
		authorized.GET("/api/memos/:id", memoHandler.GetMemoByIDHandler)
		authorized.POST("/api/memos", memoHandler.CreateMemoHandler)
		authorized.PUT("/api/memos/:id", memoHandler.UpdateMemoHandler)
		authorized.DELETE("/api/memos/:id", memoHandler.DeleteMemoHandler)

		authorized.POST("/api/upload", uploadHandler.UploadHandler)
		authorized.DELETE("/api/upload", uploadHandler.DeleteHandler)
	}

	return r
}
