package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelog-api/internal/models"
	"lifelog-api/testutil"
)

func TestMemo_CRUDRoundTrip(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	// 作成
	resp := testutil.DoJSON(t, router, http.MethodPost, "/api/memos", token,
		map[string]any{"title": "Meeting notes", "content": "discussed the roadmap"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Memo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	assert.Equal(t, "Meeting notes", created.Title)
	require.NotNil(t, created.Content)
	assert.Equal(t, "discussed the roadmap", *created.Content)

	path := fmt.Sprintf("/api/memos/%d", created.ID)

	// 取得
	resp = testutil.DoJSON(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var fetched models.Memo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)

	// 更新
	resp = testutil.DoJSON(t, router, http.MethodPut, path, token,
		map[string]any{"title": "Meeting notes (final)", "content": "roadmap approved"})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated models.Memo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Meeting notes (final)", updated.Title)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "roadmap approved", *updated.Content)

	// 削除 → 再取得は404
	resp = testutil.DoJSON(t, router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = testutil.DoJSON(t, router, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateMemo_ContentOptional(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	resp := testutil.DoJSON(t, router, http.MethodPost, "/api/memos", token, map[string]any{"title": "Just a title"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Memo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Just a title", created.Title)
	assert.Nil(t, created.Content)
}

func TestCreateMemo_Validation(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing title", map[string]any{"content": "orphan body"}},
		{"title too long", map[string]any{"title": longString(101)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, router, http.MethodPost, "/api/memos", token, tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestMemos_OwnershipIsolation(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	tokenAlice := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")
	tokenBob := testutil.LoginAndGetToken(t, router, "bob@example.com", "password456")

	memo := testutil.CreateTestMemo(t, router, tokenAlice, "Alice's diary")
	path := fmt.Sprintf("/api/memos/%d", memo.ID)

	resp := testutil.DoJSON(t, router, http.MethodGet, path, tokenBob, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = testutil.DoJSON(t, router, http.MethodPut, path, tokenBob, map[string]any{"title": "hijacked"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = testutil.DoJSON(t, router, http.MethodDelete, path, tokenBob, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMemos_HaveNoToggleRoute(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")
	memo := testutil.CreateTestMemo(t, router, token, "No checkbox here")

	resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/memos/%d/toggle", memo.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
