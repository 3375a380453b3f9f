package main

import (
	"net/http"

	"catatanku/config"
	"catatanku/config/database"
	"catatanku/pkg/logger"
	"catatanku/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env before the logger so LOG_LEVEL from the file is honored.
	dotenvErr := godotenv.Load()

	logger.Init()
	defer logger.Log.Sync()

	if dotenvErr != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("Invalid configuration: %v", err)
	}

	db := database.Connect(cfg)
	defer db.Close()

	logger.Sugar.Infof("Go backend listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router.Setup(db, cfg)); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
