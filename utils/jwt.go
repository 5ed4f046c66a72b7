package utils

import (
	"log"
	"os"
	"time"
)

var (
	JWTSecretKey  string
	JWTExpiration time.Duration
)

// InitJWT loads the token signing configuration. Tokens are short-lived by
// design: there is no refresh or revocation mechanism, compromise is bounded
// by the expiry alone.
func InitJWT() {
	// For tests, fall back to a fixed key so no .env is needed
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	JWTExpiration = GetEnvAsDuration("JWT_EXPIRATION_TIME", time.Hour)
}
