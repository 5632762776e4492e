package services

import (
	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
// 共通CRUDは ResourceService、完了切替はTodo固有の拡張です。
type TodoService struct {
	*ResourceService[models.Todo]
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{
		ResourceService: NewResourceService(todoRepo, func(t *models.Todo, userID int) { t.UserID = userID }),
		todoRepo:        todoRepo,
	}
}

// Toggle は完了状態を反転します。
func (s *TodoService) Toggle(id, userID int) (*models.Todo, error) {
	return s.todoRepo.ToggleCompleted(id, userID)
}
