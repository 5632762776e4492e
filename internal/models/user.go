// Package models はエンティティとリクエストDTOを定義します。
package models

import "time"

// User はユーザーのデータベース構造体を表します。
// PasswordHash はJSONに出力しません。
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserDTO はクライアントに返すユーザー情報の公開部分です。
type UserDTO struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// DTO はUserの公開プロジェクションを返します。
func (u *User) DTO() UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Username: u.Username}
}

// AuthResponse は登録・ログイン成功時のレスポンスです。
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// RegisterRequest はユーザー登録リクエストの構造体です。
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"` // 生パスワード
	Username string `json:"username" binding:"required,max=100"`
}

// LoginRequest はユーザーログインリクエストの構造体です。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
