package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBDSN     string
	JWTSecret string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":5000"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "dev-fallback-key"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		DBDSN:     dsn,
		JWTSecret: secret,
	}
}
