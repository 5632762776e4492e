package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lifelog-api/internal/config"
	"lifelog-api/internal/models"
)

// Claims はJWTに埋め込むクレームの構造体です。
type Claims struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService はJWTトークンの生成と検証を扱います。
// 鍵・発行者・対象者・有効期限はすべて設定から与えられます。
type JWTService struct {
	secret         []byte
	issuer         string
	audience       string
	expirationDays int
}

// NewJWTService は新しいJWTServiceを作成します。
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secret:         []byte(cfg.JWTSecret),
		issuer:         cfg.JWTIssuer,
		audience:       cfg.JWTAudience,
		expirationDays: cfg.JWTExpirationDays,
	}
}

// GenerateToken はユーザー情報からJWTトークンを生成します。
// 有効期限は設定された日数です。リフレッシュ機構はなく、失効後は再ログインが必要です。
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, s.expirationDays)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken はJWTトークンを検証し、クレームを返します。
// 署名・発行者・対象者・有効期限のいずれかが不正ならエラーになります。
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
