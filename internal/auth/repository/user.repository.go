package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catatanku/internal/auth/model"
	"catatanku/pkg/apperr"
	"catatanku/pkg/logger"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(id, name, email, passwordHash string) error {
	_, err := r.DB.Exec(`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		id, name, email, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("email already registered: %w", apperr.ErrConflict)
		}
		logger.Sugar.Errorf("Failed to create user: %v", err)
	}
	return err
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRow(`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
		}
		logger.Sugar.Errorf("Failed to get user by email %s: %v", email, err)
		return nil, err
	}
	return &u, nil
}
