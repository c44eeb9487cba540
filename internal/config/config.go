package config

import (
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// devJWTSecret is the base64 form of the development-only signing key.
const devJWTSecret = "dGFza2RlY2stZGV2LXNlY3JldC1jaGFuZ2UtaW4tcHJvZHVjdGlvbg=="

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	JWTSecret     []byte
	TokenValidity time.Duration
}

// Load reads configuration from the environment. The signing key is decoded
// from base64 exactly once here; everything downstream receives the raw
// bytes and treats them as immutable.
func Load() Config {
	secretString := getEnv("JWT_SECRET", devJWTSecret)

	secret, err := base64.StdEncoding.DecodeString(secretString)
	if err != nil {
		slog.Error("JWT_SECRET must be base64-encoded", "error", err)
		os.Exit(1)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskdeck?parseTime=true"),
		JWTSecret:     secret,
		TokenValidity: time.Duration(getEnvInt("TOKEN_VALIDITY_SECONDS", 3600)) * time.Second,
	}

	if cfg.Env == "production" && secretString == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Error("invalid integer environment value", "key", key, "value", v)
		os.Exit(1)
	}
	return n
}
