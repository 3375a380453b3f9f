package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const defaultSummaryModelURL = "https://router.huggingface.co/hf-inference/models/google/pegasus-xsum"

// Config holds everything the server reads from the environment.
// Secrets stay here instead of being re-read per request.
type Config struct {
	Addr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	SummaryModelURL string
	SummaryAPIKey   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:            ":" + getenv("PORT", "8080"),
		DBUser:          strings.TrimSpace(os.Getenv("user")),
		DBPassword:      strings.TrimSpace(os.Getenv("password")),
		DBHost:          strings.TrimSpace(os.Getenv("host")),
		DBPort:          strings.TrimSpace(os.Getenv("port")),
		DBName:          strings.TrimSpace(os.Getenv("dbname")),
		DBSSLMode:       getenv("sslmode", "require"),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:        24 * time.Hour,
		SummaryModelURL: getenv("SUMMARY_MODEL_URL", defaultSummaryModelURL),
		SummaryAPIKey:   strings.TrimSpace(os.Getenv("HF_API_KEY")),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}

	if ttl := strings.TrimSpace(os.Getenv("TOKEN_TTL")); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration")
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
