package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"catatanku/pkg/httpjson"
	"catatanku/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserIDKey contextKey = "userID"

// Claims is the session token payload. Only UserID matters to the rest of
// the server; expiry lives in the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Auth returns a middleware that verifies the Bearer token against secret
// and puts the authenticated user's ID into the request context. Requests
// with a missing, malformed, expired or wrongly signed token are rejected
// with 401 before any handler runs.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpjson.Error(w, http.StatusUnauthorized, "Unauthorized: no token provided")
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				logger.Sugar.Infof("Invalid token: %v", err)
				httpjson.Error(w, http.StatusUnauthorized, "Unauthorized: invalid or expired token")
				return
			}
			if claims.UserID == "" {
				httpjson.Error(w, http.StatusUnauthorized, "Unauthorized: user_id claim is missing")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
