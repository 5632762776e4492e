package models

import "time"

// Todo はToDoタスクのデータベース構造体を表します。
// 期限と通知時間を持ちますが、通知の配送自体はこのAPIの範囲外です。
type Todo struct {
	ID                  int        `json:"id"`
	UserID              int        `json:"userId"`
	Title               string     `json:"title"`
	Description         *string    `json:"description,omitempty"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	NotifyBeforeMinutes int        `json:"notifyBeforeMinutes"` // 期限の何分前に通知するか
	Priority            int        `json:"priority"`            // 0:通常, 1:重要, 2:緊急
	Completed           bool       `json:"completed"`
	ImageURL            *string    `json:"imageUrl,omitempty"`
	LinkURL             *string    `json:"linkUrl,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// TodoRequest はTodo作成・更新リクエストの構造体です。
// NotifyBeforeMinutes はポインタにして「省略」と「0分」を区別します。
type TodoRequest struct {
	Title               string     `json:"title" binding:"required,max=200"`
	Description         *string    `json:"description"`
	Deadline            *time.Time `json:"deadline"`
	NotifyBeforeMinutes *int       `json:"notifyBeforeMinutes" binding:"omitempty,min=0,max=1440"`
	Priority            int        `json:"priority" binding:"omitempty,min=0,max=2"`
	ImageURL            *string    `json:"imageUrl" binding:"omitempty,max=500"`
	LinkURL             *string    `json:"linkUrl" binding:"omitempty,max=500"`
}

// Model はリクエストからTodoエンティティを構築します。
// notifyBeforeMinutes 省略時はデフォルトの30分を適用します。
func (r *TodoRequest) Model() *Todo {
	notify := 30
	if r.NotifyBeforeMinutes != nil {
		notify = *r.NotifyBeforeMinutes
	}
	return &Todo{
		Title:               r.Title,
		Description:         r.Description,
		Deadline:            r.Deadline,
		NotifyBeforeMinutes: notify,
		Priority:            r.Priority,
		ImageURL:            r.ImageURL,
		LinkURL:             r.LinkURL,
	}
}
