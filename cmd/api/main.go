package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"lifelog-api/internal/config"
	"lifelog-api/internal/database"
	"lifelog-api/internal/routes"
)

func main() {
	// .env はローカル開発用。本番では環境変数を直接使う
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db := database.InitDB(cfg)
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logrus.Fatalf("Failed to ensure database schema: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	logrus.Infof("Server listening on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
