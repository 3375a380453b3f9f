package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"catatanku/config"
	"catatanku/config/database/migrations"
	"catatanku/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Connect opens the Postgres pool, verifies it with a short retry loop and
// applies pending schema migrations. Failure here is fatal: nothing can be
// served without the store.
func Connect(cfg *config.Config) *sql.DB {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Sugar.Fatalf("Failed to open database connection: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Info("Successfully connected to the database")
			if err := Migrate(db); err != nil {
				logger.Sugar.Fatalf("Failed to run migrations: %v", err)
			}
			return db
		}
		logger.Sugar.Infof("Database connection failed, retrying in 2s... (%v)", err)
		time.Sleep(2 * time.Second)
	}
	logger.Sugar.Fatal("Could not connect to database after retries.")
	return nil
}

// Migrate applies the embedded goose migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), db, ".")
}
