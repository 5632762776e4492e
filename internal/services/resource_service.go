// Package services はビジネスロジックを提供します。
package services

// OwnedStore は所有者スコープ付きのCRUD操作を提供するストアのインターフェースです。
// Todo/Item/Memo のリポジトリがこれを満たします。
type OwnedStore[T any] interface {
	FindByUserID(userID int) ([]*T, error)
	FindByID(id, userID int) (*T, error)
	Create(t *T) (*T, error)
	Update(id, userID int, t *T) (*T, error)
	Delete(id, userID int) error
}

// ResourceService は所有者スコープ付きリソースの共通CRUDロジックです。
// 作成・更新時はリクエスト由来の所有者を無視し、認証済みユーザーを強制します。
type ResourceService[T any] struct {
	store    OwnedStore[T]
	setOwner func(*T, int)
}

// NewResourceService は新しいResourceServiceを作成します。
func NewResourceService[T any](store OwnedStore[T], setOwner func(*T, int)) *ResourceService[T] {
	return &ResourceService[T]{store: store, setOwner: setOwner}
}

// List は認証済みユーザーのリソース一覧を返します。
func (s *ResourceService[T]) List(userID int) ([]*T, error) {
	return s.store.FindByUserID(userID)
}

// Get は指定IDのリソースを返します。他ユーザーの行は ErrNotFound になります。
func (s *ResourceService[T]) Get(id, userID int) (*T, error) {
	return s.store.FindByID(id, userID)
}

// Create は所有者を認証済みユーザーに強制してリソースを作成します。
func (s *ResourceService[T]) Create(userID int, t *T) (*T, error) {
	s.setOwner(t, userID)
	return s.store.Create(t)
}

// Update は指定IDのリソースの可変フィールドを上書きします。
func (s *ResourceService[T]) Update(id, userID int, t *T) (*T, error) {
	s.setOwner(t, userID)
	return s.store.Update(id, userID, t)
}

// Delete は指定IDのリソースを削除します。
func (s *ResourceService[T]) Delete(id, userID int) error {
	return s.store.Delete(id, userID)
}
