package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	DatabaseURL   string
	JWTSigningKey string
	TokenTTL      time.Duration
	BcryptCost    int
}

const (
	defaultAddr     = ":5000"
	defaultTokenTTL = 24 * time.Hour
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Every value has a default; an empty DOORMAN_DATABASE_URL selects the
// in-memory store.
func FromEnv() Server {
	addr := os.Getenv("DOORMAN_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	tokenTTL := defaultTokenTTL
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		if duration, err := time.ParseDuration(ttlStr); err == nil {
			tokenTTL = duration
		}
	}

	bcryptCost := bcrypt.DefaultCost
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		if cost, err := strconv.Atoi(costStr); err == nil {
			bcryptCost = cost
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DOORMAN_DATABASE_URL"),
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      tokenTTL,
		BcryptCost:    bcryptCost,
	}
}
