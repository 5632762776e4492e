package models

import "time"

// Memo はメモ（サイズ表など）のデータベース構造体を表します。
// Todo/Itemと違い完了の概念を持ちません。
type Memo struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoRequest はメモ作成・更新リクエストの構造体です。
type MemoRequest struct {
	Title   string  `json:"title" binding:"required,max=100"`
	Content *string `json:"content"`
}

// Model はリクエストからMemoエンティティを構築します。
func (r *MemoRequest) Model() *Memo {
	return &Memo{
		Title:   r.Title,
		Content: r.Content,
	}
}
