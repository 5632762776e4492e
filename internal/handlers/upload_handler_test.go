package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelog-api/testutil"
)

// doUpload はmultipart/form-dataで /api/upload にファイルを送信します。
func doUpload(t *testing.T, router *gin.Engine, token, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUpload_Success(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	content := bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 256)
	resp := doUpload(t, router, token, "photo.png", content)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var result struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.URL)
	assert.Contains(t, result.URL, "/uploads/")
	assert.True(t, strings.HasSuffix(result.URL, ".png"))

	// 返されたURLのパスが同じルーター経由で配信されること
	parsed, err := url.Parse(result.URL)
	require.NoError(t, err)

	getReq, _ := http.NewRequest(http.MethodGet, parsed.Path, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	require.Equal(t, http.StatusOK, getResp.Code)
	assert.Equal(t, content, getResp.Body.Bytes())
}

func TestUpload_Validation(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	t.Run("no file", func(t *testing.T) {
		resp := doUpload(t, router, token, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		resp := doUpload(t, router, token, "report.pdf", []byte("%PDF-1.4"))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "files are allowed")
	})

	t.Run("over size limit", func(t *testing.T) {
		resp := doUpload(t, router, token, "huge.jpg", make([]byte, 6<<20))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "5MB or smaller")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		resp := doUpload(t, router, "", "photo.png", []byte("data"))
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestDeleteUpload(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	resp := doUpload(t, router, token, "temp.gif", []byte("GIF89a"))
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	parsed, err := url.Parse(result.URL)
	require.NoError(t, err)
	fileName := strings.TrimPrefix(parsed.Path, "/uploads/")

	// 削除 → 再削除は404
	delResp := testutil.DoJSON(t, router, http.MethodDelete, "/api/upload?fileName="+fileName, token, nil)
	require.Equal(t, http.StatusOK, delResp.Code, delResp.Body.String())

	delResp = testutil.DoJSON(t, router, http.MethodDelete, "/api/upload?fileName="+fileName, token, nil)
	assert.Equal(t, http.StatusNotFound, delResp.Code)
}

func TestDeleteUpload_RejectsTraversal(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")

	tests := []struct {
		name     string
		fileName string
	}{
		{"empty", ""},
		{"dot dot", ".."},
		{"traversal", url.QueryEscape("../secret.png")},
		{"nested path", url.QueryEscape("sub/dir.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, router, http.MethodDelete, "/api/upload?fileName="+tt.fileName, token, nil)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}
