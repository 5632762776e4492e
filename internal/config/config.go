// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config はアプリケーション全体の設定を保持します。
// main.go で一度だけ Load() し、必要なコンポーネントに明示的に渡します。
type Config struct {
	Port string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret         string
	JWTIssuer         string
	JWTAudience       string
	JWTExpirationDays int

	UploadDir   string
	FrontendURL string
}

// Load は環境変数から設定を読み込みます。
// JWT_SECRET は必須です。未設定の場合は起動を中断します。
func Load() *Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET environment variable not set")
	}

	expirationDays := 7
	if v := os.Getenv("JWT_EXPIRATION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			logrus.Fatalf("Invalid JWT_EXPIRATION_DAYS: %q", v)
		}
		expirationDays = days
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getEnv("DB_HOST", "127.0.0.1"),
		DBPort: getEnv("DB_PORT", "3306"),
		DBName: getEnv("DB_NAME", "lifelog"),

		JWTSecret:         secret,
		JWTIssuer:         getEnv("JWT_ISSUER", "lifelog-api"),
		JWTAudience:       getEnv("JWT_AUDIENCE", "lifelog-client"),
		JWTExpirationDays: expirationDays,

		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

// DSN はMySQL接続文字列 (DSN) を構築します。
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
