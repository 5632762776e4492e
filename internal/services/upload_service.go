package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// アップロードのバリデーションエラー。ハンドラーで400/404に変換されます。
var (
	ErrFileRequired    = errors.New("no file provided")
	ErrFileTooLarge    = errors.New("file exceeds the maximum size of 5MB")
	ErrFileType        = errors.New("only jpg, jpeg, png, gif and webp files are allowed")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrFileNotFound    = errors.New("file not found")
)

// MaxUploadSize はアップロード可能な最大ファイルサイズです (5MiB)。
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService は画像ファイルの保存と削除を扱います。
// 保存されたファイルは静的アセットとして認証なしで参照できます。
// 所有者は記録されないため、削除はファイル名だけで行われます。
type UploadService struct {
	dir string
}

// NewUploadService は新しいUploadServiceを作成します。
// アップロードディレクトリが無ければ作成します。
func NewUploadService(dir string) *UploadService {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.Fatalf("Failed to create upload directory %s: %v", dir, err)
	}
	return &UploadService{dir: dir}
}

// Save はアップロードされたファイルを検証して保存し、保存名を返します。
// ファイル名はタイムスタンプ + UUID で衝突しないように生成されます。
func (s *UploadService) Save(header *multipart.FileHeader) (string, error) {
	if header == nil || header.Size == 0 {
		return "", ErrFileRequired
	}
	if header.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrFileType
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer src.Close()

	fileName := fmt.Sprintf("%s_%s%s", time.Now().UTC().Format("20060102150405"), uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("could not write file: %w", err)
	}

	logrus.Infof("Uploaded file saved: %s", fileName)
	return fileName, nil
}

// Delete は指定されたファイル名のアップロード済みファイルを削除します。
// パストラバーサルを含む名前は拒否します。
func (s *UploadService) Delete(fileName string) error {
	if fileName == "" || strings.Contains(fileName, "..") || strings.ContainsAny(fileName, `/\`) {
		return ErrInvalidFileName
	}

	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrFileNotFound
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("could not delete file: %w", err)
	}
	logrus.Infof("Uploaded file deleted: %s", fileName)
	return nil
}
