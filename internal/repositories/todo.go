package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
)

// TodoRepository はTodoのデータベース操作を行うための構造体です。
// すべてのクエリは所有者の user_id で絞り込まれます。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

const todoColumns = "id, user_id, title, description, deadline, notify_before_minutes, priority, completed, image_url, link_url, created_at"

func scanTodo(row interface{ Scan(...any) error }) (*models.Todo, error) {
	var t models.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Deadline,
		&t.NotifyBeforeMinutes, &t.Priority, &t.Completed,
		&t.ImageURL, &t.LinkURL, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByUserID は指定ユーザーのTodoを作成日時の降順で取得します。
func (r *TodoRepository) FindByUserID(userID int) ([]*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logrus.Errorf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			logrus.Errorf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}
	return todos, nil
}

// FindByID は指定されたIDのTodoを取得します。
// 存在しない、または所有者が異なる場合は ErrNotFound を返します。
func (r *TodoRepository) FindByID(id, userID int) (*models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos WHERE id = ? AND user_id = ?"
	t, err := scanTodo(r.DB.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logrus.Errorf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}
	return t, nil
}

// Create は新しいTodoをデータベースに挿入し、サーバー採番後の行を返します。
func (r *TodoRepository) Create(t *models.Todo) (*models.Todo, error) {
	query := `INSERT INTO todos (user_id, title, description, deadline, notify_before_minutes, priority, completed, image_url, link_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.DB.Exec(query, t.UserID, t.Title, t.Description, t.Deadline,
		t.NotifyBeforeMinutes, t.Priority, t.Completed, t.ImageURL, t.LinkURL)
	if err != nil {
		logrus.Errorf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	return r.FindByID(int(id), t.UserID)
}

// Update は指定されたIDのTodoの可変フィールドを上書きします。
// id, user_id, created_at は変更されません。
func (r *TodoRepository) Update(id, userID int, t *models.Todo) (*models.Todo, error) {
	// 所有確認を先に行う (値が同一の更新で RowsAffected が0になるため)
	if _, err := r.FindByID(id, userID); err != nil {
		return nil, err
	}

	query := `UPDATE todos SET title = ?, description = ?, deadline = ?, notify_before_minutes = ?, priority = ?, image_url = ?, link_url = ?
		WHERE id = ? AND user_id = ?`
	_, err := r.DB.Exec(query, t.Title, t.Description, t.Deadline, t.NotifyBeforeMinutes,
		t.Priority, t.ImageURL, t.LinkURL, id, userID)
	if err != nil {
		logrus.Errorf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}
	return r.FindByID(id, userID)
}

// Delete は指定されたIDのTodoを削除します。
func (r *TodoRepository) Delete(id, userID int) error {
	result, err := r.DB.Exec("DELETE FROM todos WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		logrus.Errorf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
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
func (r *TodoRepository) ToggleCompleted(id, userID int) (*models.Todo, error) {
	result, err := r.DB.Exec("UPDATE todos SET completed = NOT completed WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		logrus.Errorf("Failed to toggle todo: %v", err)
		return nil, fmt.Errorf("could not toggle todo: %w", err)
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
