package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lifelog-api/internal/models"
	"lifelog-api/internal/repositories"
)

// ErrInvalidCredentials は認証失敗のエラーです。
// メールアドレス不明とパスワード不一致を区別せず、同一の結果を返します。
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService はユーザー登録・ログイン・トークン発行を扱います。
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *JWTService
}

// NewAuthService は新しいAuthServiceを作成します。
func NewAuthService(userRepo *repositories.UserRepository, jwtService *JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Register はユーザーを登録し、トークンと公開ユーザー情報を返します。
// メールアドレスが既に登録されている場合は repositories.ErrDuplicateEmail を返します。
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		logrus.Errorf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Username:     req.Username,
	}
	createdUser, err := s.userRepo.Create(newUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(createdUser)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: createdUser.DTO()}, nil
}

// Login はユーザーを認証し、成功したらトークンと公開ユーザー情報を返します。
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	foundUser, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := repositories.VerifyPassword(foundUser.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(foundUser)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: foundUser.DTO()}, nil
}
