package services

import (
	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
)

// MemoService はメモ関連のビジネスロジックを扱います。
// メモに完了の概念はないため、共通CRUDのみです。
type MemoService struct {
	*ResourceService[models.Memo]
}

// NewMemoService は新しいMemoServiceを作成します。
func NewMemoService(memoRepo *repositories.MemoRepository) *MemoService {
	return &MemoService{
		ResourceService: NewResourceService(memoRepo, func(m *models.Memo, userID int) { m.UserID = userID }),
	}
}
