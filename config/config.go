package config

import (
	"os"
	"strconv"
	"time"

	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// Config carries everything the panel reads from the environment. The
// .env file is loaded by main before this runs.
type Config struct {
	Port string

	// Base URLs of the four backend surfaces.
	PublicURL string
	AdminURL  string
	AuthURL   string
	ImagesURL string

	// Kitchen board polling.
	PollInterval time.Duration

	// Session handling.
	SessionTTL time.Duration

	// Local backend mode (development / tests): serve the backend API
	// in-process from a gorm database instead of a remote service.
	LocalBackend bool
	DBDriver     string
	DBDSN        string
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		PublicURL:    getEnv("BACKEND_PUBLIC_URL", "http://localhost:3001/public-panel"),
		AdminURL:     getEnv("BACKEND_ADMIN_URL", "http://localhost:3001/admin-panel"),
		AuthURL:      getEnv("BACKEND_AUTH_URL", "http://localhost:3001/auth"),
		ImagesURL:    getEnv("BACKEND_IMAGES_URL", "http://localhost:3001/images"),
		PollInterval: getDuration("KITCHEN_POLL_INTERVAL", 10*time.Second),
		SessionTTL:   getDuration("SESSION_TTL", 2*time.Hour),
		LocalBackend: getBool("LOCAL_BACKEND", false),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBDSN:        getEnv("DB_DSN", "file:orderpanel.db?cache=shared"),
	}

	utils.SetJWTSecret(os.Getenv("JWT_SECRET"))
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
