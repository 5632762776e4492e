package services

import (
	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
)

// ItemService はアイテム関連のビジネスロジックを扱います。
// 共通CRUDは ResourceService、カテゴリフィルタと完了切替がItem固有の拡張です。
type ItemService struct {
	*ResourceService[models.Item]
	itemRepo *repositories.ItemRepository
}

// NewItemService は新しいItemServiceを作成します。
func NewItemService(itemRepo *repositories.ItemRepository) *ItemService {
	return &ItemService{
		ResourceService: NewResourceService(itemRepo, func(i *models.Item, userID int) { i.UserID = userID }),
		itemRepo:        itemRepo,
	}
}

// ListByCategory はカテゴリ指定付きの一覧を返します。
// category が空の場合は全件を返します。
func (s *ItemService) ListByCategory(userID int, category string) ([]*models.Item, error) {
	if category == "" {
		return s.itemRepo.FindByUserID(userID)
	}
	return s.itemRepo.FindByUserIDAndCategory(userID, category)
}

// Toggle は完了状態を反転します。
func (s *ItemService) Toggle(id, userID int) (*models.Item, error) {
	return s.itemRepo.ToggleCompleted(id, userID)
}
