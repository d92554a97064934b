package main

import (
	"fmt"

	"perfume-store/internal/config"
	"perfume-store/internal/database"
	"perfume-store/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	database.Init(cfg.DBPath)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
