package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
)

// MemoRepository はメモのデータベース操作を行うための構造体です。
// すべてのクエリは所有者の user_id で絞り込まれます。
type MemoRepository struct {
	DB *sql.DB
}

// NewMemoRepository は新しいMemoRepositoryインスタンスを作成します。
func NewMemoRepository(db *sql.DB) *MemoRepository {
	return &MemoRepository{DB: db}
}

const memoColumns = "id, user_id, title, content, created_at"

func scanMemo(row interface{ Scan(...any) error }) (*models.Memo, error) {
	var m models.Memo
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByUserID は指定ユーザーのメモを作成日時の降順で取得します。
func (r *MemoRepository) FindByUserID(userID int) ([]*models.Memo, error) {
	query := "SELECT " + memoColumns + " FROM memos WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logrus.Errorf("Failed to query memos: %v", err)
		return nil, fmt.Errorf("could not query memos: %w", err)
	}
	defer rows.Close()

	memos := []*models.Memo{}
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			logrus.Errorf("Failed to scan memo: %v", err)
			return nil, fmt.Errorf("could not scan memo: %w", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memos: %w", err)
	}
	return memos, nil
}

// FindByID は指定されたIDのメモを取得します。
// 存在しない、または所有者が異なる場合は ErrNotFound を返します。
func (r *MemoRepository) FindByID(id, userID int) (*models.Memo, error) {
	query := "SELECT " + memoColumns + " FROM memos WHERE id = ? AND user_id = ?"
	m, err := scanMemo(r.DB.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logrus.Errorf("Failed to query memo by ID: %v", err)
		return nil, fmt.Errorf("could not query memo: %w", err)
	}
	return m, nil
}

// Create は新しいメモをデータベースに挿入し、サーバー採番後の行を返します。
func (r *MemoRepository) Create(m *models.Memo) (*models.Memo, error) {
	result, err := r.DB.Exec("INSERT INTO memos (user_id, title, content) VALUES (?, ?, ?)", m.UserID, m.Title, m.Content)
	if err != nil {
		logrus.Errorf("Failed to insert memo: %v", err)
		return nil, fmt.Errorf("could not insert memo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	return r.FindByID(int(id), m.UserID)
}

// Update は指定されたIDのメモの可変フィールドを上書きします。
func (r *MemoRepository) Update(id, userID int, m *models.Memo) (*models.Memo, error) {
	if _, err := r.FindByID(id, userID); err != nil {
		return nil, err
	}

	_, err := r.DB.Exec("UPDATE memos SET title = ?, content = ? WHERE id = ? AND user_id = ?", m.Title, m.Content, id, userID)
	if err != nil {
		logrus.Errorf("Failed to update memo: %v", err)
		return nil, fmt.Errorf("could not update memo: %w", err)
	}
	return r.FindByID(id, userID)
}

// Delete は指定されたIDのメモを削除します。
func (r *MemoRepository) Delete(id, userID int) error {
	result, err := r.DB.Exec("DELETE FROM memos WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		logrus.Errorf("Failed to delete memo: %v", err)
		return fmt.Errorf("could not delete memo: %w", err)
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
