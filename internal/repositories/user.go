package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // パスワードのハッシュ化用

	"lifelog-api/internal/models"
)

// UserRepository はユーザーのデータベース操作を行うための構造体です。
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository は新しいUserRepositoryインスタンスを作成します。
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// HashPassword は与えられたパスワードをbcryptでハッシュ化します。
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword はハッシュ化されたパスワードと平文のパスワードを比較します。
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Create は新しいユーザーをデータベースに挿入します。
// メールアドレスが重複している場合は ErrDuplicateEmail を返します。
func (r *UserRepository) Create(u *models.User) (*models.User, error) {
	query := "INSERT INTO users (email, password_hash, username) VALUES (?, ?, ?)"
	result, err := r.DB.Exec(query, u.Email, u.PasswordHash, u.Username)
	if err != nil {
		// MySQLの重複エントリーエラーコード1062をチェック
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrDuplicateEmail
		}
		logrus.Errorf("Failed to insert user: %v", err)
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return r.FindByID(int(id))
}

// FindByID はIDでユーザーを検索します。
func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := "SELECT id, email, password_hash, username, created_at FROM users WHERE id = ?"
	var u models.User
	err := r.DB.QueryRow(query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logrus.Errorf("Failed to query user by ID: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}
	return &u, nil
}

// FindByEmail はメールアドレスでユーザーを検索します。
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := "SELECT id, email, password_hash, username, created_at FROM users WHERE email = ?"
	var u models.User
	err := r.DB.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logrus.Errorf("Failed to query user by email: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}
	return &u, nil
}
