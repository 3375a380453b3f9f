package service

import (
	"fmt"
	"time"

	"catatanku/internal/auth/repository"
	"catatanku/middleware"
	"catatanku/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login. There is no refresh or
// server-side revocation: a token stays valid until its natural expiry and
// logout is client-side token disposal only.
type AuthService struct {
	Repo      *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo *repository.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{Repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("name, email and password are required: %w", apperr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.Create(uuid.NewString(), name, email, string(hash))
}

// Login verifies credentials and mints a signed session token. Unknown email
// and wrong password produce the same error so account existence does not
// leak.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthenticated)
	}
	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	return token.SignedString(s.jwtSecret)
}
