// Package testutil は統合テスト用のデータベースとルーターのセットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"lifelog-api/internal/config"
	"lifelog-api/internal/database"
	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
	"lifelog-api/internal/routes"
)

// TestConfig はテスト用の設定を返します。
// アップロード先はテストごとの一時ディレクトリです。
func TestConfig(t *testing.T) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key",
		JWTIssuer:         "lifelog-api",
		JWTAudience:       "lifelog-client",
		JWTExpirationDays: 1,
		UploadDir:         t.TempDir(),
		FrontendURL:       "http://localhost:5173",
	}
}

// SetupTestDB はテスト用のデータベース接続を確立し、テーブルを作成し、テストユーザーを投入します。
// 返されたルーターに対して httptest でリクエストを流してテストします。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	_ = godotenv.Load("../../.env")

	dbUser := getenv("TEST_DB_USER", "root")
	dbPass := os.Getenv("TEST_DB_PASS")
	dbHost := getenv("TEST_DB_HOST", "127.0.0.1")
	dbPort := getenv("TEST_DB_PORT", "3306")
	dbName := getenv("TEST_DB_NAME", "lifelog_test")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err, "Failed to open test database connection")
	require.NoError(t, db.Ping(), "Failed to ping test database")

	require.NoError(t, database.EnsureSchema(db))

	// テストのたびにクリーンな状態にする
	_, err = db.Exec("SET FOREIGN_KEY_CHECKS=0")
	require.NoError(t, err)
	for _, table := range []string{"todos", "items", "memos", "users"} {
		_, err = db.Exec("TRUNCATE TABLE " + table)
		require.NoError(t, err)
	}
	_, err = db.Exec("SET FOREIGN_KEY_CHECKS=1")
	require.NoError(t, err)

	cfg := TestConfig(t)

	// テストユーザーの投入
	userRepo := repositories.NewUserRepository(db)
	CreateTestUser(t, userRepo, "alice@example.com", "password123", "alice")
	CreateTestUser(t, userRepo, "bob@example.com", "password456", "bob")

	router := routes.SetupRouter(db, cfg)
	return db, router, cfg
}

// CreateTestUser はテスト用のユーザーをデータベースに直接作成します。
func CreateTestUser(t *testing.T, userRepo *repositories.UserRepository, email, password, username string) *models.User {
	hashedPassword, err := repositories.HashPassword(password)
	require.NoError(t, err)

	createdUser, err := userRepo.Create(&models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Username:     username,
	})
	require.NoError(t, err)
	require.NotZero(t, createdUser.ID)
	return createdUser
}

// LoginAndGetToken はログインAPIを呼び出してトークンを取得します。
func LoginAndGetToken(t *testing.T, router *gin.Engine, email, password string) string {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, "login failed: %s", resp.Body.String())

	var loginRes models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &loginRes))
	require.NotEmpty(t, loginRes.Token)
	return loginRes.Token
}

// DoJSON は認証ヘッダー付きのJSONリクエストを実行します。
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestTodo はAPI経由でテスト用のTodoを作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, token, title string) *models.Todo {
	resp := DoJSON(t, router, http.MethodPost, "/api/todos", token, map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, resp.Code, "failed to create todo: %s", resp.Body.String())

	var created models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return &created
}

// CreateTestItem はAPI経由でテスト用のアイテムを作成します。
func CreateTestItem(t *testing.T, router *gin.Engine, token, title, category string) *models.Item {
	resp := DoJSON(t, router, http.MethodPost, "/api/items", token, map[string]any{"title": title, "category": category})
	require.Equal(t, http.StatusCreated, resp.Code, "failed to create item: %s", resp.Body.String())

	var created models.Item
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return &created
}

// CreateTestMemo はAPI経由でテスト用のメモを作成します。
func CreateTestMemo(t *testing.T, router *gin.Engine, token, title string) *models.Memo {
	resp := DoJSON(t, router, http.MethodPost, "/api/memos", token, map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, resp.Code, "failed to create memo: %s", resp.Body.String())

	var created models.Memo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return &created
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
