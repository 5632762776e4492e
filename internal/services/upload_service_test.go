package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader はテスト用の *multipart.FileHeader を組み立てます。
func makeFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadService_SaveAcceptsPNG(t *testing.T) {
	dir := t.TempDir()
	s := NewUploadService(dir)

	content := bytes.Repeat([]byte{0xAB}, 4<<20) // 4MiBは上限内
	header := makeFileHeader(t, "photo.PNG", content)

	fileName, err := s.Save(header)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(fileName)) // 拡張子は小文字化される

	// 保存された内容がアップロードしたものと一致すること
	saved, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestUploadService_SaveGeneratesUniqueNames(t *testing.T) {
	s := NewUploadService(t.TempDir())

	first, err := s.Save(makeFileHeader(t, "a.jpg", []byte("one")))
	require.NoError(t, err)
	second, err := s.Save(makeFileHeader(t, "a.jpg", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadService_SaveRejectsTooLarge(t *testing.T) {
	s := NewUploadService(t.TempDir())

	content := bytes.Repeat([]byte{0x01}, 6<<20) // 6MiBは上限超過
	_, err := s.Save(makeFileHeader(t, "big.png", content))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadService_SaveRejectsBadExtension(t *testing.T) {
	s := NewUploadService(t.TempDir())

	for _, name := range []string{"doc.pdf", "script.sh", "noext"} {
		_, err := s.Save(makeFileHeader(t, name, []byte("data")))
		assert.ErrorIs(t, err, ErrFileType, "expected rejection for %s", name)
	}
}

func TestUploadService_SaveRejectsEmptyFile(t *testing.T) {
	s := NewUploadService(t.TempDir())

	_, err := s.Save(makeFileHeader(t, "empty.png", nil))
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = s.Save(nil)
	assert.ErrorIs(t, err, ErrFileRequired)
}

func TestUploadService_Delete(t *testing.T) {
	dir := t.TempDir()
	s := NewUploadService(dir)

	fileName, err := s.Save(makeFileHeader(t, "gone.gif", []byte("gif")))
	require.NoError(t, err)

	require.NoError(t, s.Delete(fileName))
	_, err = os.Stat(filepath.Join(dir, fileName))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadService_DeleteRejectsTraversal(t *testing.T) {
	s := NewUploadService(t.TempDir())

	for _, name := range []string{"", "../secret.png", "a/../../b.png", "sub/dir.png"} {
		assert.ErrorIs(t, s.Delete(name), ErrInvalidFileName, "expected rejection for %q", name)
	}
}

func TestUploadService_DeleteMissingFile(t *testing.T) {
	s := NewUploadService(t.TempDir())
	assert.ErrorIs(t, s.Delete("nothing-here.png"), ErrFileNotFound)
}
