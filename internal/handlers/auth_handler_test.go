package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelog-api/internal/models"
	"lifelog-api/internal/services"
	"lifelog-api/testutil"
)

func TestRegister_Success(t *testing.T) {
	db, router, cfg := testutil.SetupTestDB(t)
	defer db.Close()

	payload := map[string]string{
		"email":    "hanako@example.com",
		"password": "secret6",
		"username": "hanako",
	}
	resp := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var authRes models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &authRes))
	assert.NotEmpty(t, authRes.Token)
	assert.NotZero(t, authRes.User.ID)
	assert.Equal(t, "hanako@example.com", authRes.User.Email)
	assert.Equal(t, "hanako", authRes.User.Username)

	// トークンが同じユーザーIDにデコードできること
	claims, err := services.NewJWTService(cfg).ValidateToken(authRes.Token)
	require.NoError(t, err)
	assert.Equal(t, authRes.User.ID, claims.UserID)

	// 登録直後に同じ資格情報でログインできること
	token := testutil.LoginAndGetToken(t, router, "hanako@example.com", "secret6")
	loginClaims, err := services.NewJWTService(cfg).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, authRes.User.ID, loginClaims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	payload := map[string]string{
		"email":    "dup@example.com",
		"password": "secret6",
		"username": "first",
	}
	resp := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusOK, resp.Code)

	// ユーザー名やパスワードが違っても2回目は必ず失敗する
	payload["username"] = "second"
	payload["password"] = "another6"
	resp = testutil.DoJSON(t, router, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "already registered")
}

func TestRegister_Validation(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"short password", map[string]string{"email": "a@example.com", "password": "12345", "username": "a"}},
		{"invalid email", map[string]string{"email": "not-an-email", "password": "secret6", "username": "a"}},
		{"missing username", map[string]string{"email": "a@example.com", "password": "secret6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/register", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestLogin_FailureIsUniform(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	// 存在しないメールアドレスと誤ったパスワードで同じレスポンスになること
	wrongPassword := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "alice@example.com", "password": "wrongpass"})
	unknownEmail := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "nobody@example.com", "password": "password123"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_Success(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	resp := testutil.DoJSON(t, router, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "alice@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, resp.Code)

	var authRes models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &authRes))
	assert.NotEmpty(t, authRes.Token)
	assert.Equal(t, "alice", authRes.User.Username)
	// パスワードハッシュが外に出ないこと
	assert.NotContains(t, resp.Body.String(), "password")
}
