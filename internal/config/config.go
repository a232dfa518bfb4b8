package config

import (
	"errors"
	"os"
)

type Config struct {
	Addr          string
	DBDSN         string
	CookieSecret  []byte
	SecureCookies bool
}

// Load reads configuration from the environment. DB_DSN is the only
// required variable.
func Load() (Config, error) {
	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}

	secret := getenv("COOKIE_SECRET", "dev-only-insecure-secret")
	cfg.CookieSecret = []byte(secret)

	if cfg.DBDSN == "" {
		return Config{}, errors.New("DB_DSN environment variable is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
