package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBPath        string
	ServerPort    string
	SessionSecret string
	UploadDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:        os.Getenv("DB_PATH"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "perfume.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "web/uploads"
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}
