package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
)

// ItemRepository はアイテムのデータベース操作を行うための構造体です。
// すべてのクエリは所有者の user_id で絞り込まれます。
type ItemRepository struct {
	DB *sql.DB
}

// NewItemRepository は新しいItemRepositoryインスタンスを作成します。
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

const itemColumns = "id, user_id, title, category, description, completed, image_url, link_url, created_at"

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var i models.Item
	err := row.Scan(
		&i.ID, &i.UserID, &i.Title, &i.Category, &i.Description,
		&i.Completed, &i.ImageURL, &i.LinkURL, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ItemRepository) queryItems(query string, args ...any) ([]*models.Item, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logrus.Errorf("Failed to query items: %v", err)
		return nil, fmt.Errorf("could not query items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			logrus.Errorf("Failed to scan item: %v", err)
			return nil, fmt.Errorf("could not scan item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

// FindByUserID は指定ユーザーのアイテムを作成日時の降順で取得します。
func (r *ItemRepository) FindByUserID(userID int) ([]*models.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE user_id = ? ORDER BY created_at DESC"
	return r.queryItems(query, userID)
}

// FindByUserIDAndCategory はカテゴリで絞り込んだアイテムを取得します。
func (r *ItemRepository) FindByUserIDAndCategory(userID int, category string) ([]*models.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE user_id = ? AND category = ? ORDER BY created_at DESC"
	return r.queryItems(query, userID, category)
}

// FindByID は指定されたIDのアイテムを取得します。
// 存在しない、または所有者が異なる場合は ErrNotFound を返します。
func (r *ItemRepository) FindByID(id, userID int) (*models.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE id = ? AND user_id = ?"
	i, err := scanItem(r.DB.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logrus.Errorf("Failed to query item by ID: %v", err)
		return nil, fmt.Errorf("could not query item: %w", err)
	}
	return i, nil
}

// Create は新しいアイテムをデータベースに挿入し、サーバー採番後の行を返します。
func (r *ItemRepository) Create(i *models.Item) (*models.Item, error) {
	query := `INSERT INTO items (user_id, title, category, description, completed, image_url, link_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.DB.Exec(query, i.UserID, i.Title, i.Category, i.Description, i.Completed, i.ImageURL, i.LinkURL)
	if err != nil {
		logrus.Errorf("Failed to insert item: %v", err)
		return nil, fmt.Errorf("could not insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	return r.FindByID(int(id), i.UserID)
}

// Update は指定されたIDのアイテムの可変フィールドを上書きします。
func (r *ItemRepository) Update(id, userID int, i *models.Item) (*models.Item, error) {
	if _, err := r.FindByID(id, userID); err != nil {
		return nil, err
	}

	query := `UPDATE items SET title = ?, category = ?, description = ?, image_url = ?, link_url = ?
		WHERE id = ? AND user_id = ?`
	_, err := r.DB.Exec(query, i.Title, i.Category, i.Description, i.ImageURL, i.LinkURL, id, userID)
	if err != nil {
		logrus.Errorf("Failed to update item: %v", err)
		return nil, fmt.Errorf("could not update item: %w", err)
	}
	return r.FindByID(id, userID)
}

// Delete は指定されたIDのアイテムを削除します。
func (r *ItemRepository) Delete(id, userID int) error {
	result, err := r.DB.Exec("DELETE FROM items WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		logrus.Errorf("Failed to delete item: %v", err)
		return fmt.Errorf("could not delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleCompleted は完了状態を反転し、更新後の行を返します。
func (r *ItemRepository) ToggleCompleted(id, userID int) (*models.Item, error) {
	result, err := r.DB.Exec("UPDATE items SET completed = NOT completed WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		logrus.Errorf("Failed to toggle item: %v", err)
		return nil, fmt.Errorf("could not toggle item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id, userID)
}
