package models

import "time"

// Item はアイテム（買いたいもの、見たいものなど）のデータベース構造体を表します。
type Item struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Category    string    `json:"category"` // shopping/movie/drama/manga/place/goal
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	LinkURL     *string   `json:"linkUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemRequest はアイテム作成・更新リクエストの構造体です。
type ItemRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Category    string  `json:"category" binding:"required,oneof=shopping movie drama manga place goal"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=500"`
	LinkURL     *string `json:"linkUrl" binding:"omitempty,max=500"`
}

// Model はリクエストからItemエンティティを構築します。
func (r *ItemRequest) Model() *Item {
	return &Item{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
	}
}
