package config

import (
	"os"
	"strconv"
)

// Config holds all recognized environment options. Defaults mirror the
// local-dev setup: in-memory store, BFF on :8100, insecure cookie.
type Config struct {
	Port             string
	AppName          string
	BFFBaseURL       string
	JWTCookieName    string
	JWTCookieSecure  bool
	JWTSecret        string
	JWTExpiryHours   int
	PublicHostDomain string
	DBURL            string
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		AppName:          getEnv("APP_NAME", "Slotifyme Admin"),
		BFFBaseURL:       getEnv("BFF_BASE_URL", "http://localhost:8100"),
		JWTCookieName:    getEnv("JWT_COOKIE_NAME", "slotifyme_admin_jwt"),
		JWTCookieSecure:  getEnv("JWT_COOKIE_SECURE", "false") == "true",
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiryHours:   168, // 7 days
		PublicHostDomain: getEnv("PUBLIC_HOST_DOMAIN", "slotifyme.com"),
		DBURL:            os.Getenv("DB_URL"),
	}

	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			cfg.JWTExpiryHours = h
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
